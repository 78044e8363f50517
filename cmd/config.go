package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
// A double underscore separates nesting levels, so FASTFEET_DB__HOST maps to
// Config.Database.Host and FASTFEET_HTTP__READ_TIMEOUT to Config.HTTP.ReadTimeout.
const EnvPrefix = "FASTFEET_"

type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Database DatabaseConfig `koanf:"db"`
	Redis    RedisConfig    `koanf:"redis"`
	Jobs     JobsConfig     `koanf:"jobs"`
	Log      LogConfig      `koanf:"log"`
}

type HTTPConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            string        `koanf:"port" validate:"required,numeric"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
}

// RedisConfig enables the recipient cache when Addr is set.
type RedisConfig struct {
	Addr     string        `koanf:"addr" validate:"omitempty,hostname_port"`
	Username string        `koanf:"username"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db" validate:"gte=0"`
	TTL      time.Duration `koanf:"ttl" validate:"gt=0"`
}

type JobsConfig struct {
	DeliveryBacklogSchedule string `koanf:"delivery_backlog_schedule" validate:"required"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the values used for settings absent from the environment.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Port:            "5432",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Redis: RedisConfig{
			TTL: 5 * time.Minute,
		},
		Jobs: JobsConfig{
			DeliveryBacklogSchedule: "@every 1m",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads envFiles (missing files are ignored) into the process
// environment, maps FASTFEET_* variables over DefaultConfig and validates the result.
// Variables already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	config := DefaultConfig()
	if err = k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// LogLevel returns the configured slog level.
func (c Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// CacheEnabled reports whether a Redis address is configured.
func (c Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}
