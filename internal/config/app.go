package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/gcp/internal/core"
)

const (
	FrontendReadline = "readline"
	FrontendTUI      = "tui"
)

type AppConfig struct {
	RuntimePath string `env:"GCP_RUNTIME_PATH" envDefault:".gcp"`
	// Interactive front end used by `gcp console`
	Frontend string `env:"GCP_FRONTEND" envDefault:"readline"`

	// Recall history
	PersistHistory bool `env:"GCP_PERSIST_HISTORY" envDefault:"true"`
	HistoryLimit   int  `env:"GCP_HISTORY_LIMIT" envDefault:"500"`
}

var _ core.AppConfig = (*AppConfig)(nil)

func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c AppConfig) Validate() error {
	switch c.Frontend {
	case FrontendReadline, FrontendTUI:
	default:
		return fmt.Errorf("unknown frontend %q (want %s or %s)", c.Frontend, FrontendReadline, FrontendTUI)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit must not be negative, got %d", c.HistoryLimit)
	}
	return nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "gcp.db")
}

func (c AppConfig) GetHistoryFilePath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetEnvFilePath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
