package usecase

import (
	"context"

	"tastoria/internal/model"
	"tastoria/internal/profile"
	"tastoria/internal/user"
	userRepo "tastoria/internal/user/repository"
)

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (user.User, error) {
	return uc.current(ctx, sc, "Me")
}

// Update applies the non-empty fields of input to the caller's profile.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input profile.UpdateInput) (user.User, error) {
	u, err := uc.current(ctx, sc, "Update")
	if err != nil {
		return user.User{}, err
	}

	opt := userRepo.UpdateOptionsFrom(u)
	opt.Name = coalesce(input.Name, u.Name)
	opt.PhoneNumber = coalesce(input.PhoneNumber, u.PhoneNumber)
	opt.Location = coalesce(input.Location, u.Location)
	opt.Bio = coalesce(input.Bio, u.Bio)
	opt.PhotoURL = coalesce(input.PhotoURL, u.PhotoURL)
	if input.Preferences != nil {
		opt.Preferences = *input.Preferences
	}

	updated, err := uc.users.UpdateUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.profile.usecase.Update UpdateUser: %v", err)
		return user.User{}, err
	}
	if updated.ID == "" {
		return user.User{}, profile.ErrProfileNotFound
	}
	return updated, nil
}

// Delete removes the caller's account. Favorites and bookings go with it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope) error {
	if _, err := uc.current(ctx, sc, "Delete"); err != nil {
		return err
	}
	if err := uc.users.DeleteUser(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "internal.profile.usecase.Delete DeleteUser: %v", err)
		return err
	}
	uc.l.Infof(ctx, "internal.profile.usecase.Delete: account %s deleted", sc.UserID)
	return nil
}

func (uc *implUseCase) current(ctx context.Context, sc model.Scope, method string) (user.User, error) {
	if sc.IsZero() {
		return user.User{}, profile.ErrProfileNotFound
	}
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.profile.usecase.%s GetOneUser: %v", method, err)
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, profile.ErrProfileNotFound
	}
	return u, nil
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
