package usecase

import (
	"context"
	"errors"
	"time"

	"tastoria/internal/user"
	repo "tastoria/internal/user/repository"
	"tastoria/pkg/mailer"
)

// Register creates an unverified account and mails a verification code valid for VerificationTTL.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.User, error) {
	if err := uc.ensureEmailFree(ctx, input.Email); err != nil {
		return user.User{}, err
	}

	hash, err := uc.enc.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register HashPassword: %v", err)
		return user.User{}, err
	}
	code, err := uc.enc.NewCode()
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register NewCode: %v", err)
		return user.User{}, err
	}

	if err := uc.mail.Send(ctx, mailer.VerificationMessage(input.Email, input.Name, code)); err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register Send: %v", err)
		return user.User{}, user.ErrSendOTP
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:                  input.Name,
		Email:                 input.Email,
		PasswordHash:          hash,
		VerificationCode:      code,
		VerificationExpiresAt: uc.now().Add(uc.cfg.VerificationTTL),
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return user.User{}, user.ErrUserExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register CreateUser: %v", err)
		return user.User{}, err
	}
	return u, nil
}

// VerifyEmail marks the owner of an unexpired code as verified and clears the code.
func (uc *implUseCase) VerifyEmail(ctx context.Context, code string) (user.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{VerificationCode: code})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.VerifyEmail GetOneUser: %v", err)
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, user.ErrInvalidCode
	}

	opt := repo.UpdateOptionsFrom(u)
	opt.IsVerified = true
	opt.VerificationCode = ""
	opt.VerificationExpiresAt = time.Time{}

	updated, err := uc.repo.UpdateUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.VerifyEmail UpdateUser: %v", err)
		return user.User{}, err
	}
	if updated.ID == "" {
		return user.User{}, user.ErrInvalidCode
	}
	return updated, nil
}
