package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "STOCK"

type Config struct {
	App    AppConfig
	DB     DBConfig
	Auth   AuthConfig
	Export ExportConfig
}

type AppConfig struct {
	Port     string `envconfig:"STOCK_APP_PORT" default:"3000"`
	LogLevel string `envconfig:"STOCK_LOG_LEVEL" default:"info"`
}

type DBConfig struct {
	// sqlite is the default: a single-writer local store. postgres stays
	// selectable for deployments that already run one.
	Driver string `envconfig:"STOCK_DB_DRIVER" default:"sqlite"`
	Path   string `envconfig:"STOCK_DB_PATH" default:"inventory.db"`
	DSN    string `envconfig:"STOCK_DB_DSN"`
}

type AuthConfig struct {
	// When PassphraseHash is empty the API runs open (single trusted device).
	// Otherwise POST /auth/pair exchanges the passphrase for a bearer token.
	JWTSecret      string `envconfig:"STOCK_JWT_SECRET" default:"change-me-in-production"`
	PassphraseHash string `envconfig:"STOCK_PASSPHRASE_HASH"`
}

type ExportConfig struct {
	Dir string `envconfig:"STOCK_EXPORT_DIR" default:"."`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DB.Driver == "postgres" && cfg.DB.DSN == "" {
		return nil, fmt.Errorf("STOCK_DB_DSN is required when STOCK_DB_DRIVER=postgres")
	}
	return &cfg, nil
}

// PairingEnabled reports whether write routes require a paired device token.
func (a AuthConfig) PairingEnabled() bool {
	return a.PassphraseHash != ""
}
