package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/gcp/internal/config"
	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/internal/service/command"
	"github.com/sandevgo/gcp/internal/storage/sqlite"
	"github.com/sandevgo/gcp/internal/transport/cli"
	"github.com/sandevgo/gcp/internal/transport/tui"
	"github.com/sandevgo/gcp/pkg/log"
	"github.com/sandevgo/gcp/pkg/srv"
)

// frontend is an interactive console run as a service; Done closes when the
// user leaves it.
type frontend interface {
	srv.Service
	Done() <-chan struct{}
}

func NewServices(ctx context.Context, frontendName string) ([]srv.Service, frontend, error) {
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		return nil, nil, err
	}
	if frontendName != "" {
		appCfg.Frontend = frontendName
		if err := appCfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	consoleCfg := config.NewConsoleConfig(ctx)

	router := command.NewDefault()
	services := make([]srv.Service, 0)

	var fe frontend
	switch appCfg.Frontend {
	case config.FrontendTUI:
		var repo core.HistoryRepository
		if appCfg.PersistHistory {
			db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
			if err != nil {
				return nil, nil, err
			}
			services = append(services, srv.NewCleanup(db.Close))
			repo = sqlite.NewHistoryRepo(db)
		}
		fe, err = tui.NewConsole(ctx, router, appCfg, consoleCfg, repo)
	default:
		fe, err = cli.NewReadLine(router, appCfg, consoleCfg)
	}
	if err != nil {
		for _, s := range services {
			s.Shutdown(ctx)
		}
		return nil, nil, err
	}

	services = append(services, fe)
	log.FromCtx(ctx).Debug().Str("frontend", appCfg.Frontend).Msg("services initialized")
	return services, fe, nil
}

// initEnv loads the runtime .env file, if any, so it can feed the env-based
// configs.
func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
