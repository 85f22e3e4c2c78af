package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"tastoria/internal/user"
	repo "tastoria/internal/user/repository"
	"tastoria/pkg/mailer"
	"tastoria/pkg/metrics"
)

// SendVerificationOTP parks the registration in the pending store and mails a 6 digit code.
func (uc *implUseCase) SendVerificationOTP(ctx context.Context, input user.SendVerificationOTPInput) (user.SendVerificationOTPOutput, error) {
	if err := uc.ensureEmailFree(ctx, input.Email); err != nil {
		return user.SendVerificationOTPOutput{}, err
	}

	otp, err := uc.enc.NewOTP()
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.SendVerificationOTP NewOTP: %v", err)
		return user.SendVerificationOTPOutput{}, err
	}
	hash, err := uc.enc.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.SendVerificationOTP HashPassword: %v", err)
		return user.SendVerificationOTPOutput{}, err
	}

	p := user.PendingSignup{
		ID:           uc.newID(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		OTP:          otp,
		ExpiresAt:    uc.now().Add(uc.cfg.OTPTTL),
	}
	if err := uc.pending.Save(ctx, p); err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.SendVerificationOTP Save: %v", err)
		return user.SendVerificationOTPOutput{}, err
	}

	if err := uc.mail.Send(ctx, mailer.OTPMessage(p.Email, p.Name, otp)); err != nil {
		metrics.SignupOTPsSent.WithLabelValues(metrics.ResultError).Inc()
		uc.l.Errorf(ctx, "internal.user.usecase.SendVerificationOTP Send: %v", err)
		if delErr := uc.pending.Delete(ctx, p.ID); delErr != nil {
			uc.l.Warnf(ctx, "internal.user.usecase.SendVerificationOTP Delete: %v", delErr)
		}
		return user.SendVerificationOTPOutput{}, user.ErrSendOTP
	}
	metrics.SignupOTPsSent.WithLabelValues(metrics.ResultOK).Inc()

	return user.SendVerificationOTPOutput{TempUserID: p.ID}, nil
}

// VerifySignupOTP turns a pending signup into a verified user.
func (uc *implUseCase) VerifySignupOTP(ctx context.Context, input user.VerifySignupOTPInput) (user.User, error) {
	p, err := uc.pending.Get(ctx, input.TempUserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.VerifySignupOTP Get: %v", err)
		return user.User{}, err
	}
	if p.ID == "" {
		return user.User{}, user.ErrInvalidSession
	}
	if subtle.ConstantTimeCompare([]byte(p.OTP), []byte(input.OTP)) != 1 {
		return user.User{}, user.ErrInvalidOTP
	}
	if uc.now().After(p.ExpiresAt) {
		uc.dropPending(ctx, p.ID)
		return user.User{}, user.ErrOTPExpired
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		IsVerified:   true,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		uc.dropPending(ctx, p.ID)
		return user.User{}, user.ErrUserExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.VerifySignupOTP CreateUser: %v", err)
		return user.User{}, err
	}

	uc.dropPending(ctx, p.ID)
	return u, nil
}

func (uc *implUseCase) dropPending(ctx context.Context, id string) {
	if err := uc.pending.Delete(ctx, id); err != nil {
		uc.l.Warnf(ctx, "internal.user.usecase.dropPending: %v", err)
	}
}

func (uc *implUseCase) ensureEmailFree(ctx context.Context, email string) error {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.ensureEmailFree: %v", err)
		return err
	}
	if existing.ID != "" {
		return user.ErrUserExists
	}
	return nil
}
