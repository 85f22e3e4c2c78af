package usecase

import (
	"context"

	"tastoria/internal/user"
	repo "tastoria/internal/user/repository"
)

// Login checks the password and issues an access token for verified users.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if err := uc.enc.ComparePassword(u.PasswordHash, input.Password); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if !u.IsVerified {
		return user.AuthOutput{}, user.ErrNotVerified
	}

	return uc.issue(ctx, u)
}

func (uc *implUseCase) issue(ctx context.Context, u user.User) (user.AuthOutput, error) {
	token, err := uc.jwt.CreateToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.issue: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{Token: token, User: u}, nil
}
