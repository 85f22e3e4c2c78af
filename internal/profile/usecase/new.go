package usecase

import (
	menuRepo "tastoria/internal/menu/repository"
	"tastoria/internal/profile/repository"
	userRepo "tastoria/internal/user/repository"
	"tastoria/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	users userRepo.UserRepository
	items menuRepo.ItemRepository
}

// New creates a profile UseCase. Users and menu items are read through their
// own domain repositories.
func New(l log.Logger, repo repository.Repository, users userRepo.UserRepository, items menuRepo.ItemRepository) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		users: users,
		items: items,
	}
}
