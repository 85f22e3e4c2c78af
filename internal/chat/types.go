package chat

type RespondInput struct {
	Message string
}

// RespondOutput is the reply to one chat message. CafeID is set only when Navigate is.
type RespondOutput struct {
	Intent       string
	Reply        string
	Navigate     bool
	CafeID       string
	RequiresAuth bool
}
