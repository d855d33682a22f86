package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/winhire/interview-engine/internal/timezone"
)

var DefaultRecommendations = []string{
	"Pending",
	"StrongHire",
	"Hire",
	"Select",
	"Maybe",
	"Hold",
	"NoHire",
	"Reject",
}

// Load reads config.yaml (if any), then .env, then the process environment.
// Nested keys map to env vars with "." replaced by "_", e.g. DATABASE_URL.
func Load() (*Config, error) {
	return LoadWith(viper.New(), ".env")
}

func LoadWith(v *viper.Viper, envFiles ...string) (*Config, error) {
	loadEnvFiles(envFiles...)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

// AutomaticEnv only resolves keys viper already knows about, so every key
// that may come purely from the environment is registered here.
func bindEnv(v *viper.Viper) {
	keys := []string{
		"server.port", "server.shutdown_timeout", "server.gin_mode", "server.allowed_origins",
		"database.url", "database.max_open_conns", "database.max_idle_conns",
		"database.conn_max_lifetime", "database.conn_max_idle_time", "database.auto_migrate",
		"redis.address", "redis.password", "redis.db",
		"auth.jwt_secret",
		"logging.level", "logging.format",
		"sweeper.enabled", "sweeper.interval", "sweeper.lease_ttl", "sweeper.lease_key",
		"scheduling.timezone",
		"feedback.rating_min", "feedback.rating_max", "feedback.recommendations",
		"notify.aws_region", "notify.access_key_id", "notify.secret_access_key",
		"notify.from_email", "notify.topic_arn", "notify.queue_size",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("sweeper.enabled", true)
	v.SetDefault("database.auto_migrate", true)
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.GinMode == "" {
		cfg.Server.GinMode = "release"
	}

	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 10 * time.Minute
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Sweeper.Interval == 0 {
		cfg.Sweeper.Interval = 5 * time.Minute
	}
	if cfg.Sweeper.LeaseTTL == 0 {
		cfg.Sweeper.LeaseTTL = cfg.Sweeper.Interval
	}
	if cfg.Sweeper.LeaseKey == "" {
		cfg.Sweeper.LeaseKey = "interview-engine:sweeper:lease"
	}

	if cfg.Scheduling.Timezone == "" {
		cfg.Scheduling.Timezone = "UTC"
	}

	if cfg.Feedback.RatingMin == 0 && cfg.Feedback.RatingMax == 0 {
		cfg.Feedback.RatingMin = 1
		cfg.Feedback.RatingMax = 10
	}
	if len(cfg.Feedback.Recommendations) == 0 {
		cfg.Feedback.Recommendations = append([]string(nil), DefaultRecommendations...)
	}

	if cfg.Notify.AWSRegion == "" {
		cfg.Notify.AWSRegion = "us-east-1"
	}
	if cfg.Notify.QueueSize == 0 {
		cfg.Notify.QueueSize = 100
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Sweeper.Interval < time.Second {
		return fmt.Errorf("sweeper.interval must be at least 1s, got %s", cfg.Sweeper.Interval)
	}
	if cfg.Feedback.RatingMin > cfg.Feedback.RatingMax {
		return fmt.Errorf("feedback.rating_min (%d) exceeds feedback.rating_max (%d)",
			cfg.Feedback.RatingMin, cfg.Feedback.RatingMax)
	}
	if !timezone.IsValid(cfg.Scheduling.Timezone) {
		return fmt.Errorf("scheduling.timezone %q is not a known location", cfg.Scheduling.Timezone)
	}
	return nil
}
