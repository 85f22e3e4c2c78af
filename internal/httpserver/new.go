package httpserver

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	bookingUC "tastoria/internal/booking/usecase"
	"tastoria/internal/chat/intent"
	"tastoria/internal/user/repository/signup"
	userUC "tastoria/internal/user/usecase"
	"tastoria/pkg/encrypter"
	"tastoria/pkg/log"
	"tastoria/pkg/mailer"
	"tastoria/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	// Infrastructure
	postgresDB *sql.DB
	redis      *redis.Client

	// Shared services
	jwtManager scope.Manager
	mailer     mailer.Mailer
	encrypter  encrypter.Encrypter

	// Chat domain
	intents         intent.Table
	rateLimitPerMin int

	// User domain
	signupStore signup.Store
	signup      userUC.Config

	// Booking domain
	booking bookingUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string

	PostgresDB *sql.DB
	// Redis is optional. When set, /ready checks it too.
	Redis *redis.Client

	JWTManager scope.Manager
	Mailer     mailer.Mailer
	Encrypter  encrypter.Encrypter

	Intents intent.Table
	// RateLimitPerMin applies per client to chat and to account routes that
	// send mail or check secrets. Zero disables limiting.
	RateLimitPerMin int

	SignupStore signup.Store
	Signup      userUC.Config

	Booking bookingUC.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		postgresDB:      cfg.PostgresDB,
		redis:           cfg.Redis,
		jwtManager:      cfg.JWTManager,
		mailer:          cfg.Mailer,
		encrypter:       cfg.Encrypter,
		intents:         cfg.Intents,
		rateLimitPerMin: cfg.RateLimitPerMin,
		signupStore:     cfg.SignupStore,
		signup:          cfg.Signup,
		booking:         cfg.Booking,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.mailer == nil {
		return errors.New("mailer is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.signupStore == nil {
		return errors.New("signup store is required")
	}
	if srv.intents.IsZero() {
		return errors.New("intent table is required")
	}
	return nil
}
