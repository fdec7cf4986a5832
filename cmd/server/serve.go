package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmafa/internal/db"
	"github.com/pmafa/internal/handler"
	"github.com/pmafa/internal/mail"
	"github.com/pmafa/internal/router"
	"github.com/pmafa/internal/service"
	"github.com/pmafa/internal/telemetry"
	"github.com/pmafa/internal/upload"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the public site and admin panel",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close(context.Background())
	cfg, logger := rt.cfg, rt.logger

	gin.SetMode(cfg.GinMode)
	if cfg.UsesDefaultSecret() {
		logger.Warn("SESSION_SECRET is not set, using the development fallback")
	}

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.OTelEnabled,
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: cfg.OTelServiceName,
	})
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	created, err := db.EnsureUser(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("created initial admin account", zap.String("username", cfg.AdminUsername))
	}

	var mailer mail.Mailer = mail.Noop{Logger: logger}
	if cfg.Mail.Enabled() {
		mailer = mail.NewSMTPMailer(mail.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.User,
			Password: cfg.Mail.Password,
			FromName: cfg.Mail.FromName,
		})
	} else {
		logger.Warn("EMAIL_USER/EMAIL_PASS not set, outgoing mail is disabled")
	}

	pages := service.NewPageService(rt.docs, logger)
	auth := service.NewAuthService(rt.gdb, mailer, cfg.ResetCodeTTL, logger)
	contact := service.NewContactService(pages, mailer, logger)
	uploads := upload.NewStorage(cfg.UploadDir, cfg.UploadURLPath, cfg.MaxUploadBytes)

	janitor, err := service.NewJanitor(auth, "", logger)
	if err != nil {
		return err
	}
	janitor.Start()
	defer janitor.Stop()

	api := handler.NewAPI(pages, auth, contact, uploads, handler.Options{
		AdminEmail: cfg.AdminEmail,
		Production: cfg.IsProduction(),
		Logger:     logger,
	})
	engine := router.SetupRouter(api, router.Options{
		SessionSecret: cfg.SessionSecret,
		SessionName:   cfg.SessionName,
		SessionMaxAge: cfg.SessionMaxAge,
		SecureCookies: cfg.IsProduction(),
		TemplateGlob:  cfg.TemplateGlob,
		StaticDir:     cfg.StaticDir,
		UploadDir:     cfg.UploadDir,
		UploadURL:     cfg.UploadURLPath,
		Tracing:       cfg.OTelEnabled,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ListenAddr), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
