package usecase

import (
	"time"

	"tastoria/internal/booking/repository"
	"tastoria/pkg/log"
)

const (
	DefaultMaxPartySize    = 20
	DefaultCapacityPerSlot = 40
)

// DefaultOpenSlots are the slot labels used when none are configured.
var DefaultOpenSlots = []string{"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM"}

// Config describes the bookable slots of every cafe. Zero values use the defaults.
type Config struct {
	OpenSlots       []string
	MaxPartySize    int
	CapacityPerSlot int
}

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	cfg  Config

	now func() time.Time
}

// New creates a booking UseCase.
func New(l log.Logger, repo repository.Repository, cfg Config) *implUseCase {
	if len(cfg.OpenSlots) == 0 {
		cfg.OpenSlots = DefaultOpenSlots
	}
	if cfg.MaxPartySize <= 0 {
		cfg.MaxPartySize = DefaultMaxPartySize
	}
	if cfg.CapacityPerSlot <= 0 {
		cfg.CapacityPerSlot = DefaultCapacityPerSlot
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}
