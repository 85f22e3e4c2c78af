package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Respond(ctx context.Context, input RespondInput) (RespondOutput, error)
}
