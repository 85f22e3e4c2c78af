package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SignupStoreMemory = "memory"
	SignupStoreRedis  = "redis"

	MailProviderLog = "log"
	MailProviderSES = "ses"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Infrastructure
	Postgres PostgresConfig
	Redis    RedisConfig

	// Accounts
	Signup SignupConfig
	JWT    JWTConfig
	Mail   MailConfig

	// Domains
	Chat    ChatConfig
	Booking BookingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies lists the proxies whose X-Forwarded-For is honoured.
	// Empty means the peer address is the client.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SignupConfig struct {
	Store           string
	OTPTTL          time.Duration
	VerificationTTL time.Duration
	MaxPending      int
	BcryptCost      int
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type MailConfig struct {
	Provider string
	Region   string
	From     string
}

type ChatConfig struct {
	RulesPath       string
	RateLimitPerMin int
}

type BookingConfig struct {
	OpenSlots       []string
	MaxPartySize    int
	CapacityPerSlot int
}

// Load loads configuration using Viper.
// An optional .env file is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetStringSlice("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	// Infrastructure
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Accounts
	cfg.Signup.Store = viper.GetString("signup.store")
	cfg.Signup.OTPTTL = viper.GetDuration("signup.otp_ttl")
	cfg.Signup.VerificationTTL = viper.GetDuration("signup.verification_ttl")
	cfg.Signup.MaxPending = viper.GetInt("signup.max_pending")
	cfg.Signup.BcryptCost = viper.GetInt("signup.bcrypt_cost")
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	cfg.Mail.Provider = viper.GetString("mail.provider")
	cfg.Mail.Region = viper.GetString("mail.region")
	cfg.Mail.From = viper.GetString("mail.from")

	// Domains
	cfg.Chat.RulesPath = viper.GetString("chat.rules_path")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Booking.OpenSlots = splitList(viper.GetStringSlice("booking.open_slots"))
	cfg.Booking.MaxPartySize = viper.GetInt("booking.max_party_size")
	cfg.Booking.CapacityPerSlot = viper.GetInt("booking.capacity_per_slot")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.trusted_proxies", []string{})
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("redis.addr", "localhost:6379")

	viper.SetDefault("signup.store", SignupStoreMemory)
	viper.SetDefault("signup.otp_ttl", "10m")
	viper.SetDefault("signup.verification_ttl", "24h")
	viper.SetDefault("signup.max_pending", 10000)
	viper.SetDefault("signup.bcrypt_cost", 10)
	viper.SetDefault("jwt.ttl", "24h")
	viper.SetDefault("mail.provider", MailProviderLog)
	viper.SetDefault("mail.region", "ap-south-1")
	viper.SetDefault("mail.from", "no-reply@tastoria.app")

	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("booking.open_slots", []string{
		"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM",
	})
	viper.SetDefault("booking.max_party_size", 20)
	viper.SetDefault("booking.capacity_per_slot", 40)
}

func (c *Config) validate() error {
	if c.Environment.Name != "development" && c.JWT.Secret == "" {
		return errors.New("jwt.secret is required outside development")
	}
	if c.JWT.Secret == "" {
		c.JWT.Secret = "development-secret"
	}
	switch c.Signup.Store {
	case SignupStoreMemory, SignupStoreRedis:
	default:
		return fmt.Errorf("signup.store must be %q or %q, got %q", SignupStoreMemory, SignupStoreRedis, c.Signup.Store)
	}
	switch c.Mail.Provider {
	case MailProviderLog, MailProviderSES:
	default:
		return fmt.Errorf("mail.provider must be %q or %q, got %q", MailProviderLog, MailProviderSES, c.Mail.Provider)
	}
	if c.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if len(c.Booking.OpenSlots) == 0 {
		return errors.New("booking.open_slots must not be empty")
	}
	return nil
}

// splitList flattens comma separated entries, since env overrides arrive as a single string.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
