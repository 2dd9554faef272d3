package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "atoz"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App   AppConfig
	JWT   JWTConfig
	Toast ToastConfig
	Demo  DemoConfig
	Seed  SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ATOZ_APP_ENV" default:"dev"`
	Port         string `envconfig:"ATOZ_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ATOZ_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ATOZ_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"ATOZ_JWT_SECRET" default:"atoz-demo-secret"`
	Issuer            string `envconfig:"ATOZ_JWT_ISSUER" default:"atoz-storefront"`
	ExpirationMinutes int    `envconfig:"ATOZ_JWT_EXPIRATION_MINUTES" default:"60"`
}

// ToastConfig controls how long transient notifications stay visible.
type ToastConfig struct {
	TTL        time.Duration `envconfig:"ATOZ_TOAST_TTL" default:"2s"`
	WelcomeTTL time.Duration `envconfig:"ATOZ_TOAST_WELCOME_TTL" default:"1600ms"`
}

// DemoConfig holds the demo login allow-list. This stands in for a real
// identity provider; names are matched trimmed and case-insensitively.
type DemoConfig struct {
	AdminName   string `envconfig:"ATOZ_DEMO_ADMIN_NAME" default:"dhruv"`
	ManagerName string `envconfig:"ATOZ_DEMO_MANAGER_NAME" default:"partner"`
}

type SeedConfig struct {
	// Path points at an optional YAML fixture file. Empty means the
	// built-in demo fixtures.
	Path string `envconfig:"ATOZ_SEED_PATH"`
}
