package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/garrettladley/notemap/internal/env"
	"github.com/garrettladley/notemap/internal/xslog"
)

const DefaultAPIURL = "https://api.notemap.app"

type CredentialStore string

const (
	CredentialStoreSQLite CredentialStore = "sqlite"
	CredentialStoreRedis  CredentialStore = "redis"
	CredentialStoreMemory CredentialStore = "memory"
)

type Config struct {
	Env      appenv.Environment `env:"NOTEMAP_ENV" envDefault:"production"`
	LogLevel xslog.Level        `env:"LOG_LEVEL" envDefault:"info"`

	APIURL      string        `env:"NOTEMAP_API_URL" envDefault:"https://api.notemap.app"`
	HTTPTimeout time.Duration `env:"NOTEMAP_HTTP_TIMEOUT" envDefault:"30s"`

	Places Places

	CredentialStore CredentialStore `env:"NOTEMAP_CREDENTIAL_STORE" envDefault:"sqlite"`
	RedisURL        string          `env:"NOTEMAP_REDIS_URL"`
	// RedisAccount namespaces the credentials key when several machines share
	// one redis.
	RedisAccount string `env:"NOTEMAP_REDIS_ACCOUNT" envDefault:"default"`
}

type Places struct {
	URL       string  `env:"NOTEMAP_PLACES_URL" envDefault:"https://maps.googleapis.com/maps/api/place"`
	APIKey    string  `env:"NOTEMAP_PLACES_API_KEY"`
	RateLimit float64 `env:"NOTEMAP_PLACES_RPS" envDefault:"5"`
	Burst     int     `env:"NOTEMAP_PLACES_BURST" envDefault:"5"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.CredentialStore {
	case CredentialStoreSQLite, CredentialStoreMemory:
	case CredentialStoreRedis:
		if c.RedisURL == "" {
			return errors.New("NOTEMAP_REDIS_URL is required when NOTEMAP_CREDENTIAL_STORE=redis")
		}
	default:
		return fmt.Errorf("unknown credential store %q", c.CredentialStore)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("NOTEMAP_HTTP_TIMEOUT must be positive")
	}
	// bearer tokens only travel over plain http against a development backend
	if c.Env.IsProduction() && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("NOTEMAP_API_URL must use https when NOTEMAP_ENV=%s", c.Env)
	}
	return nil
}
