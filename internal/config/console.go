package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/gcp/pkg/log"
)

type ConsoleConfig struct {
	Prompt string `env:"GCP_PROMPT" envDefault:"> "`
	// Lines moved by PgUp/PgDn in the TUI console
	PageScroll int `env:"GCP_PAGE_SCROLL" envDefault:"20"`
}

func NewConsoleConfig(ctx context.Context) *ConsoleConfig {
	c, err := env.ParseAs[ConsoleConfig]()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Console config")
	}
	if c.PageScroll <= 0 {
		c.PageScroll = 20
	}
	return &c
}
