package main

import (
	"fmt"

	"github.com/sandevgo/gcp/internal/config"
	"github.com/sandevgo/gcp/internal/service/installer"
	"github.com/sandevgo/gcp/internal/service/ui"
	"github.com/sandevgo/gcp/pkg/env"
	"github.com/sandevgo/gcp/pkg/log"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write console settings to the runtime .env file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}
		current, err := env.Merge(appCfg, config.NewConsoleConfig(ctx))
		if err != nil {
			return err
		}
		// The runtime path locates the .env file, it cannot live inside it
		delete(current, "GCP_RUNTIME_PATH")

		envPath := appCfg.GetEnvFilePath()
		if _, err := installer.RunWizard(current, envPath, forceInit); err != nil {
			return err
		}

		log.FromCtx(ctx).Debug().Str("path", envPath).Msg("configuration saved")
		fmt.Fprintln(cmd.OutOrStdout(), ui.DescStyle.Render("Configuration saved to "+envPath))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing .env file")
	rootCmd.AddCommand(initCmd)
}
