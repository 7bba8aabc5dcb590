package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandevgo/gcp/internal/config"
	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/pkg/log"
)

// Console runs the bubbletea program as a service.
type Console struct {
	program *tea.Program
	done    chan struct{}
}

// NewConsole builds the console. repo may be nil, in which case recall
// history lives only for the session.
func NewConsole(
	ctx context.Context,
	router core.CmdRouter,
	cfg *config.AppConfig,
	console *config.ConsoleConfig,
	repo core.HistoryRepository,
) (*Console, error) {
	history := NewHistory(cfg.HistoryLimit)

	if repo != nil {
		entries, err := repo.Recent(ctx, cfg.HistoryLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
		lines := make([]string, len(entries))
		for i, e := range entries {
			lines[i] = e.Line
		}
		history.Load(lines)
		log.FromCtx(ctx).Debug().Int("count", len(lines)).Msg("loaded console history")
	}

	model := NewModel(ctx, router, Options{
		Prompt:     console.Prompt,
		PageScroll: console.PageScroll,
		History:    history,
		Repo:       repo,
	})

	return &Console{
		program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)),
		done:    make(chan struct{}),
	}, nil
}

func (c *Console) Done() <-chan struct{} {
	return c.done
}

func (c *Console) Start(ctx context.Context) error {
	defer close(c.done)

	log.FromCtx(ctx).Info().Msg("console started")
	if _, err := c.program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("console failed: %w", err)
	}
	return nil
}

func (c *Console) Shutdown(ctx context.Context) error {
	c.program.Quit()
	return nil
}
