package usecase

import (
	"context"
	"errors"

	"tastoria/internal/user"
	repo "tastoria/internal/user/repository"
)

// GoogleSignup registers an account already verified by the identity provider.
// An existing account is returned unchanged with Created=false.
func (uc *implUseCase) GoogleSignup(ctx context.Context, input user.GoogleInput) (user.GoogleSignupOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.GoogleSignup GetOneUser: %v", err)
		return user.GoogleSignupOutput{}, err
	}
	if existing.ID != "" {
		return user.GoogleSignupOutput{User: existing}, nil
	}

	u, err := uc.createGoogleUser(ctx, input)
	if err != nil {
		return user.GoogleSignupOutput{}, err
	}
	return user.GoogleSignupOutput{User: u, Created: true}, nil
}

// GoogleAuth signs a provider-verified user in, creating or linking the account as needed.
func (uc *implUseCase) GoogleAuth(ctx context.Context, input user.GoogleInput) (user.AuthOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.GoogleAuth GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}

	switch {
	case u.ID == "":
		if u, err = uc.createGoogleUser(ctx, input); err != nil {
			return user.AuthOutput{}, err
		}
	case u.GoogleID == "" || !u.IsVerified:
		opt := repo.UpdateOptionsFrom(u)
		opt.GoogleID = input.GoogleID
		opt.IsVerified = true
		if opt.PhotoURL == "" {
			opt.PhotoURL = input.PhotoURL
		}
		linked, err := uc.repo.UpdateUser(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "internal.user.usecase.GoogleAuth UpdateUser: %v", err)
			return user.AuthOutput{}, err
		}
		if linked.ID != "" {
			u = linked
		}
	}

	return uc.issue(ctx, u)
}

// createGoogleUser stores a verified user with an unguessable password.
func (uc *implUseCase) createGoogleUser(ctx context.Context, input user.GoogleInput) (user.User, error) {
	secret, err := uc.enc.NewCode()
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.createGoogleUser NewCode: %v", err)
		return user.User{}, err
	}
	hash, err := uc.enc.HashPassword(secret)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.createGoogleUser HashPassword: %v", err)
		return user.User{}, err
	}

	name := input.Name
	if name == "" {
		name = input.Email
	}
	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         name,
		Email:        input.Email,
		PasswordHash: hash,
		IsVerified:   true,
		GoogleID:     input.GoogleID,
		PhotoURL:     input.PhotoURL,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return user.User{}, user.ErrUserExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.createGoogleUser CreateUser: %v", err)
		return user.User{}, err
	}
	return u, nil
}
