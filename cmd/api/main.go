package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tastoria/config"
	"tastoria/config/postgre"
	"tastoria/config/redis"
	_ "tastoria/docs" // Swagger docs
	bookingUC "tastoria/internal/booking/usecase"
	"tastoria/internal/chat/intent"
	"tastoria/internal/httpserver"
	"tastoria/internal/user/repository/signup"
	userUC "tastoria/internal/user/usecase"
	"tastoria/pkg/encrypter"
	"tastoria/pkg/log"
	"tastoria/pkg/mailer"
	"tastoria/pkg/scope"

	goredis "github.com/redis/go-redis/v9"
)

// @title       Tastoria API
// @description Restaurant menus, bookings, accounts and the chat assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tastoria API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(context.Background(), db)

	if err := postgre.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate schema: ", err)
		return
	}
	logger.Info(ctx, "PostgreSQL connected")

	// 4. Pending signups: redis when configured, in-process otherwise
	var (
		rdb         *goredis.Client
		signupStore signup.Store
	)
	switch cfg.Signup.Store {
	case config.SignupStoreRedis:
		rdb, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer redis.Disconnect(rdb)
		signupStore = signup.NewRedis(rdb, cfg.Signup.OTPTTL, logger)
		logger.Infof(ctx, "Pending signups stored in Redis at %s", cfg.Redis.Addr)
	default:
		signupStore = signup.NewMemory(cfg.Signup.MaxPending, cfg.Signup.OTPTTL)
		logger.Info(ctx, "Pending signups stored in memory")
	}

	// 5. Mail
	var mail mailer.Mailer
	switch cfg.Mail.Provider {
	case config.MailProviderSES:
		mail, err = mailer.NewSES(ctx, cfg.Mail.Region, cfg.Mail.From)
		if err != nil {
			logger.Error(ctx, "Failed to initialize SES: ", err)
			return
		}
		logger.Infof(ctx, "Mail via SES (%s)", cfg.Mail.Region)
	default:
		mail = mailer.NewLog(logger)
		logger.Warn(ctx, "Mail provider is log: OTP emails are written to the log only")
	}

	// 6. Tokens and chat rules
	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT: ", err)
		return
	}

	intents, err := intent.Load(cfg.Chat.RulesPath)
	if err != nil {
		logger.Error(ctx, "Failed to load chat rules: ", err)
		return
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		PostgresDB:      db,
		Redis:           rdb,
		JWTManager:      jwtManager,
		Mailer:          mail,
		Encrypter:       encrypter.New(cfg.Signup.BcryptCost),
		Intents:         intents,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		SignupStore:     signupStore,
		Signup: userUC.Config{
			OTPTTL:          cfg.Signup.OTPTTL,
			VerificationTTL: cfg.Signup.VerificationTTL,
		},
		Booking: bookingUC.Config{
			OpenSlots:       cfg.Booking.OpenSlots,
			MaxPartySize:    cfg.Booking.MaxPartySize,
			CapacityPerSlot: cfg.Booking.CapacityPerSlot,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
