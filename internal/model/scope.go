package model

// Scope is the authenticated caller, resolved from a bearer token.
type Scope struct {
	UserID  string
	Email   string
	IsAdmin bool
}

func (s Scope) IsZero() bool {
	return s.UserID == ""
}
