package usecase

import (
	"context"
	"strings"

	"tastoria/internal/chat"
	"tastoria/pkg/metrics"
)

// Respond answers a chat message. Empty or whitespace-only messages are rejected
// before they reach the matcher.
func (uc *implUseCase) Respond(ctx context.Context, input chat.RespondInput) (chat.RespondOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return chat.RespondOutput{}, chat.ErrEmptyInput
	}

	res := uc.table.Match(msg)
	metrics.ChatIntents.WithLabelValues(res.Intent).Inc()
	uc.l.Infof(ctx, "internal.chat.usecase.Respond: intent=%s", res.Intent)
	uc.l.Debugf(ctx, "internal.chat.usecase.Respond: message=%q", msg)

	out := chat.RespondOutput{
		Intent: res.Intent,
		Reply:  res.Reply,
	}
	if res.Navigation != nil {
		out.Navigate = true
		out.CafeID = res.Navigation.Target
		out.RequiresAuth = res.Navigation.RequiresAuth
	}
	return out, nil
}
