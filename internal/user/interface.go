package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// OTP signup
	SendVerificationOTP(ctx context.Context, input SendVerificationOTPInput) (SendVerificationOTPOutput, error)
	VerifySignupOTP(ctx context.Context, input VerifySignupOTPInput) (User, error)

	// Code based signup
	Register(ctx context.Context, input RegisterInput) (User, error)
	VerifyEmail(ctx context.Context, code string) (User, error)

	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	GoogleSignup(ctx context.Context, input GoogleInput) (GoogleSignupOutput, error)
	GoogleAuth(ctx context.Context, input GoogleInput) (AuthOutput, error)
}
