package usecase

import (
	"time"

	"tastoria/internal/user/repository"
	"tastoria/internal/user/repository/signup"
	"tastoria/pkg/encrypter"
	"tastoria/pkg/log"
	"tastoria/pkg/mailer"
	"tastoria/pkg/scope"

	"github.com/google/uuid"
)

const (
	DefaultOTPTTL          = 10 * time.Minute
	DefaultVerificationTTL = 24 * time.Hour
)

// Config carries the lifetimes of signup secrets. Zero values use the defaults.
type Config struct {
	OTPTTL          time.Duration
	VerificationTTL time.Duration
}

type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	pending signup.Store
	mail    mailer.Mailer
	enc     encrypter.Encrypter
	jwt     scope.Manager
	cfg     Config

	now   func() time.Time
	newID func() string
}

// New creates a user UseCase.
func New(
	l log.Logger,
	repo repository.Repository,
	pending signup.Store,
	mail mailer.Mailer,
	enc encrypter.Encrypter,
	jwt scope.Manager,
	cfg Config,
) *implUseCase {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = DefaultOTPTTL
	}
	if cfg.VerificationTTL <= 0 {
		cfg.VerificationTTL = DefaultVerificationTTL
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		pending: pending,
		mail:    mail,
		enc:     enc,
		jwt:     jwt,
		cfg:     cfg,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}
