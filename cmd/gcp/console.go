package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/gcp/internal/config"
	"github.com/sandevgo/gcp/pkg/log"
	"github.com/sandevgo/gcp/pkg/srv"
	"github.com/spf13/cobra"
)

var frontendFlag string

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start an interactive console",
	Long:  `Reads lines interactively and runs each one through the command processor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		services, fe, err := NewServices(ctx, frontendFlag)
		if err != nil {
			return err
		}

		ctx, cancel := srv.CancelOnDone(ctx, fe.Done())
		defer cancel()

		srv.StartServices(ctx, services)

		// Wait for the front end to exit or an interrupt
		srv.ShutdownServices(ctx, services)
		logger.Debug().Msg("console closed")
		return nil
	},
}

func init() {
	consoleCmd.Flags().StringVarP(&frontendFlag, "frontend", "f", "", "front end to use: readline or tui (default from GCP_FRONTEND)")
	rootCmd.AddCommand(consoleCmd)
}
