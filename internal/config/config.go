package config

import (
	"fmt"
	"time"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Sweeper    SweeperConfig    `mapstructure:"sweeper"`
	Scheduling SchedulingConfig `mapstructure:"scheduling"`
	Feedback   FeedbackConfig   `mapstructure:"feedback"`
	Notify     NotifyConfig     `mapstructure:"notify"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	GinMode         string        `mapstructure:"gin_mode"`

	// AllowedOrigins restricts CORS; empty reflects any Origin.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// RedisConfig is optional. An empty Address disables the distributed
// sweep lease and the sweeper falls back to in-process serialization.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SweeperConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	LeaseTTL time.Duration `mapstructure:"lease_ttl"`
	LeaseKey string        `mapstructure:"lease_key"`
}

type SchedulingConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type FeedbackConfig struct {
	RatingMin       int      `mapstructure:"rating_min"`
	RatingMax       int      `mapstructure:"rating_max"`
	Recommendations []string `mapstructure:"recommendations"`
}

// NotifyConfig selects the outbound channels for pipeline notifications.
// With neither FromEmail nor TopicARN set, notifications are only logged.
type NotifyConfig struct {
	AWSRegion       string `mapstructure:"aws_region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	FromEmail       string `mapstructure:"from_email"`
	TopicARN        string `mapstructure:"topic_arn"`
	QueueSize       int    `mapstructure:"queue_size"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}

func (n NotifyConfig) EmailEnabled() bool {
	return n.FromEmail != ""
}

func (n NotifyConfig) SNSEnabled() bool {
	return n.TopicARN != ""
}
