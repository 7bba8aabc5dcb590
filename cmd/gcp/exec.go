package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/gcp/internal/config"
	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/internal/service/command"
	"github.com/sandevgo/gcp/internal/service/ui"
	"github.com/sandevgo/gcp/pkg/log"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec [line...]",
	Short: "Run command lines and exit",
	Long: `Runs each argument as one command line. With no arguments, lines are read from stdin.
Exits non-zero if any line was rejected.`,
	Example: `  gcp exec "add 2 3" "say (hello   world)"
  printf 'echo a\nhelp add\n' | gcp exec`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		router := command.NewDefault()

		var failed int
		var err error
		if len(args) > 0 {
			failed = runLines(ctx, router, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		} else {
			failed, err = runReader(ctx, router, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d line(s) failed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}

// runLines processes every line in order and returns how many were rejected.
// A rejected line does not stop the following ones.
func runLines(ctx context.Context, router core.CmdRouter, lines []string, out, errOut io.Writer) int {
	logger := log.FromCtx(ctx)
	failed := 0
	for i, line := range lines {
		res := router.Execute(ctx, line)
		io.WriteString(out, res.Output)
		if res.Failed() {
			failed++
			logger.Debug().Int("line", i+1).Strs("errors", res.Errors).Msg("line failed")
			io.WriteString(errOut, ui.RenderErrors(res.Errors))
		}
	}
	return failed
}

// maxLineSize bounds a single stdin line.
const maxLineSize = 16 * 1024 * 1024

func runReader(ctx context.Context, router core.CmdRouter, r io.Reader, out, errOut io.Writer) (int, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	return runLines(ctx, router, lines, out, errOut), nil
}
