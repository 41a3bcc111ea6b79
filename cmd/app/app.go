package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kleverretail/retail-cloud/internal/api"
	"github.com/kleverretail/retail-cloud/internal/config"
	"github.com/kleverretail/retail-cloud/internal/db"
	"github.com/kleverretail/retail-cloud/internal/logger"
	"github.com/kleverretail/retail-cloud/internal/repository/dao"
	"github.com/kleverretail/retail-cloud/internal/seed"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	watchLogLevel()

	gdb, err := db.OpenFromEnv(conf.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			zap.L().Error("failed to close database", zap.Error(err))
		}
	}()

	if err = dao.InitTables(gdb); err != nil {
		return fmt.Errorf("failed to create tables -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.Seed.Enabled {
		if err = seed.NewForDB(gdb).EnsureDefaults(ctx); err != nil {
			return fmt.Errorf("failed to seed database -> %w", err)
		}
	}

	s := api.NewServer(conf, gdb)
	if err = s.Run(ctx); err != nil {
		return fmt.Errorf("failed to run the server -> %w", err)
	}

	return nil
}

func watchLogLevel() {
	err := config.Watch(configPath, func(conf *config.AppConfig, err error) {
		if err != nil {
			zap.L().Warn("ignoring invalid config change", zap.Error(err))
			return
		}
		if err := logger.SetLevel(conf.API.LogLevel); err != nil {
			zap.L().Warn("ignoring invalid log level", zap.Error(err))
			return
		}
		zap.L().Info("log level changed", zap.String("level", logger.Level().String()))
	})
	if err != nil {
		zap.L().Info("config file is not watched", zap.Error(err))
	}
}
