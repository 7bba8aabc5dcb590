package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/gcp/internal/config"
	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/internal/service/ui"
	"github.com/sandevgo/gcp/pkg/log"
)

const exitCommand = "exit"

type ReadLine struct {
	cfg    *config.AppConfig
	router core.CmdRouter
	rl     *readline.Instance
	done   chan struct{}
}

func NewReadLine(router core.CmdRouter, cfg *config.AppConfig, console *config.ConsoleConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	historyFile := ""
	if cfg.PersistHistory {
		historyFile = cfg.GetHistoryFilePath()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.PromptStyle.Render(console.Prompt),
		HistoryFile:     historyFile,
		HistoryLimit:    cfg.HistoryLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       exitCommand,
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		router: router,
		rl:     rl,
		done:   make(chan struct{}),
	}, nil
}

// Done is closed once the read loop has returned.
func (r *ReadLine) Done() <-chan struct{} {
	return r.done
}

func (r *ReadLine) Start(ctx context.Context) error {
	defer close(r.done)

	logger := log.FromCtx(ctx)
	logger.Info().Msg("console started. Type 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if quit := handleLine(ctx, r.router, line, r.rl.Stdout()); quit {
			return nil
		}
	}
}

// handleLine runs one submitted line and reports whether the console
// should close.
func handleLine(ctx context.Context, router core.CmdRouter, line string, w io.Writer) bool {
	if strings.TrimSpace(line) == exitCommand {
		return true
	}

	res := router.Execute(ctx, line)
	if res.Output != "" {
		fmt.Fprint(w, res.Output)
	}
	if res.Failed() {
		fmt.Fprint(w, ui.RenderErrors(res.Errors))
	}
	return false
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
