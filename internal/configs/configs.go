package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/ilyakaznacheev/cleanenv"

	"todo-lists.com/todo-lists/internal/constants"
)

type Config struct {
	AppHost                string `env:"APP_HOST" env-default:"127.0.0.1"`
	AppPort                string `env:"APP_PORT" env-default:"8080"`
	DBDriver               string `env:"DB_DRIVER" env-default:"sqlite"`
	DatabaseDSN            string `env:"DATABASE_DSN" env-default:"todo.db"`
	FlashDriver            string `env:"FLASH_DRIVER" env-default:"redis"`
	FlashKeyPrefix         string `env:"FLASH_KEY_PREFIX" env-default:"flash:"`
	FlashTTLSeconds        int    `env:"FLASH_TTL_SECONDS" env-default:"300"`
	RedisHost              string `env:"REDIS_HOST" env-default:"127.0.0.1"`
	RedisPort              string `env:"REDIS_PORT" env-default:"6379"`
	RateLimit              int    `env:"RATE_LIMIT_PER_MINUTE" env-default:"120"`
	IdentityHeader         string `env:"IDENTITY_HEADER" env-default:"X-User-ID"`
	SessionCookie          string `env:"SESSION_COOKIE" env-default:"todo_session"`
	ShutdownTimeoutSeconds int    `env:"SHUTDOWN_TIMEOUT_SECONDS" env-default:"20"`
	LogLevel               string `env:"LOG_LEVEL" env-default:"info"`
	LogEncoding            string `env:"LOG_ENCODING" env-default:"json"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) AppURL() string {
	return net.JoinHostPort(c.AppHost, c.AppPort)
}

func (c Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

func (c Config) Validate() error {
	if c.AppHost == "" || c.AppPort == "" {
		return errors.New("APP_HOST and APP_PORT must not be empty (e.g. 127.0.0.1 and 8080)")
	}
	if c.DBDriver != constants.DBDriverSQLite && c.DBDriver != constants.DBDriverPostgres {
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", constants.DBDriverSQLite, constants.DBDriverPostgres, c.DBDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if c.FlashDriver != constants.FlashDriverRedis && c.FlashDriver != constants.FlashDriverMemory {
		return fmt.Errorf("FLASH_DRIVER must be %q or %q, got %q", constants.FlashDriverRedis, constants.FlashDriverMemory, c.FlashDriver)
	}
	if c.FlashTTLSeconds <= 0 {
		return errors.New("FLASH_TTL_SECONDS must be greater than 0")
	}
	if c.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if c.IdentityHeader == "" {
		return errors.New("IDENTITY_HEADER must not be empty")
	}
	if c.SessionCookie == "" {
		return errors.New("SESSION_COOKIE must not be empty")
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}
