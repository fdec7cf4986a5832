package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pmafa/internal/config"
	"github.com/pmafa/internal/db"
	"github.com/pmafa/internal/logging"
	"github.com/pmafa/internal/store"
)

// rootCmd 默认启动 HTTP 服务
var rootCmd = &cobra.Command{
	Use:           "pmafa",
	Short:         "PMAFA website and admin panel",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, createAdminCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runtimeDeps 是各子命令共用的配置、日志与存储。
type runtimeDeps struct {
	cfg    config.AppConfig
	logger *zap.Logger
	gdb    *gorm.DB
	docs   store.DocumentStore
}

func openRuntime(ctx context.Context) (*runtimeDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		return nil, err
	}

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Sync()
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	docs, err := store.Open(ctx, store.Options{MongoURI: cfg.MongoURI, MongoDatabase: cfg.MongoDatabase}, db.DB, logger)
	if err != nil {
		db.Close()
		logger.Sync()
		return nil, err
	}
	return &runtimeDeps{cfg: cfg, logger: logger, gdb: db.DB, docs: docs}, nil
}

func (r *runtimeDeps) Close(ctx context.Context) {
	if err := r.docs.Close(ctx); err != nil {
		r.logger.Warn("failed to close document store", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		r.logger.Warn("failed to close database", zap.Error(err))
	}
	r.logger.Sync()
}
