package mailer

import (
	"context"
	"errors"
	"fmt"
)

var ErrEmptyRecipient = errors.New("mail recipient is empty")

// Message is a single outgoing email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

const otpSubject = "Verify Your Email - Tastoria"

// OTPMessage builds the signup verification mail.
func OTPMessage(to, name, otp string) Message {
	return Message{
		To:      to,
		Subject: otpSubject,
		HTML: fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #e65100;">Welcome to Tastoria, %s!</h2>
  <p>Your verification code is:</p>
  <h1 style="letter-spacing: 6px;">%s</h1>
  <p>This code will expire in 10 minutes.</p>
  <p>If you didn't request this, please ignore this email.</p>
</div>`, name, otp),
		Text: fmt.Sprintf("Welcome to Tastoria, %s! Your verification code is %s. It expires in 10 minutes.", name, otp),
	}
}

// VerificationMessage builds the legacy email verification mail.
func VerificationMessage(to, name, code string) Message {
	return Message{
		To:      to,
		Subject: otpSubject,
		HTML: fmt.Sprintf(`<div style="font-family: Arial, sans-serif;">
  <h2>Hello %s,</h2>
  <p>Use this code to verify your Tastoria account:</p>
  <p><code>%s</code></p>
  <p>The code is valid for 24 hours.</p>
</div>`, name, code),
		Text: fmt.Sprintf("Hello %s, use this code to verify your Tastoria account: %s (valid for 24 hours).", name, code),
	}
}
