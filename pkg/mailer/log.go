package mailer

import (
	"context"

	"tastoria/pkg/log"
)

type logMailer struct {
	l log.Logger
}

// NewLog returns a Mailer that only records the recipient and subject.
// Used in development where no mail provider is configured.
func NewLog(l log.Logger) Mailer {
	return logMailer{l: l}
}

func (m logMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrEmptyRecipient
	}
	m.l.Infof(ctx, "pkg.mailer.log.Send: to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
