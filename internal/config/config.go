// Package config loads the process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env and an optional .env file.
type Config struct {
	Server struct {
		Port               string
		GinMode            string
		CORSAllowedOrigins []string
	}
	Log struct {
		Level  string
		Format string
	}
	Database struct {
		Driver         string
		URL            string
		RunMigrations  bool
		ConnectTimeout time.Duration
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		CacheTTL time.Duration
	}
	Storage struct {
		Bucket        string
		Region        string
		Endpoint      string
		PublicBaseURL string
		KeyPrefix     string
	}
	AWS struct {
		Profile string
	}
	Stripe struct {
		SecretKey string
		Currency  string
		APIURL    string
		Timeout   time.Duration
	}
}

// envKeys maps configuration keys to their environment variable.
var envKeys = map[string]string{
	"server.port":               "PORT",
	"server.ginmode":            "GIN_MODE",
	"server.corsallowedorigins": "CORS_ALLOWED_ORIGINS",
	"log.level":                 "LOG_LEVEL",
	"log.format":                "LOG_FORMAT",
	"database.driver":           "DATABASE_DRIVER",
	"database.url":              "DATABASE_URL",
	"database.runmigrations":    "RUN_MIGRATIONS",
	"database.connecttimeout":   "DATABASE_CONNECT_TIMEOUT",
	"redis.host":                "REDIS_HOST",
	"redis.port":                "REDIS_PORT",
	"redis.password":            "REDIS_PASSWORD",
	"redis.cachettl":            "CACHE_TTL",
	"storage.bucket":            "S3_BUCKET",
	"storage.region":            "S3_REGION",
	"storage.endpoint":          "S3_ENDPOINT",
	"storage.publicbaseurl":     "S3_PUBLIC_BASE_URL",
	"storage.keyprefix":         "S3_KEY_PREFIX",
	"aws.profile":               "AWS_PROFILE",
	"stripe.secretkey":          "STRIPE_SECRET_KEY",
	"stripe.currency":           "STRIPE_CURRENCY",
	"stripe.apiurl":             "STRIPE_API_URL",
	"stripe.timeout":            "PAYMENT_TIMEOUT",
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first; variables already set take precedence.
func Load() (Config, error) {
	_ = godotenv.Load() // optional file

	v := viper.New()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetDefault("server.port", "3000")
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.corsallowedorigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.runmigrations", true)
	v.SetDefault("database.connecttimeout", 60*time.Second)
	v.SetDefault("redis.cachettl", time.Minute)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.keyprefix", "offers")
	v.SetDefault("stripe.currency", "eur")
	v.SetDefault("stripe.timeout", 10*time.Second)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Server.CORSAllowedOrigins = splitOrigins(cfg.Server.CORSAllowedOrigins)
	return cfg, nil
}

// Validate reports the mandatory settings that are missing.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Database.URL) == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER %q is not supported", c.Database.Driver))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Server.Port
}

// splitOrigins accepts both a list and a single comma-separated entry.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
