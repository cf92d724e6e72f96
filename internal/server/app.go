package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/boundaries/out"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/common"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/httpserve"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/httpserve/handlers"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/templating/render"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/usecase/status"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"
)

type App struct {
	Config    *common.Config
	Echo      *echo.Echo
	Status    *status.Service
	Log       *logger.Logger
	StartTime time.Time
}

// NewServerApp wires the status service, renderer and router for cfg.
func NewServerApp(cfg *common.Config, env out.EnvLookup, log *logger.Logger) *App {
	svc := status.NewService(env, log)
	h := handlers.NewStatusHandler(svc, render.NewTemplRenderer(), cfg.RenderMode())

	e := httpserve.NewRouter(cfg, h, log)
	e.Server.ReadTimeout = cfg.ReadTimeout()
	e.Server.WriteTimeout = cfg.WriteTimeout()

	return &App{
		Config:    cfg,
		Echo:      e,
		Status:    svc,
		Log:       log,
		StartTime: time.Now(),
	}
}

// Run serves until ctx is cancelled, then shuts down within the configured
// grace period. A listener failure is returned immediately.
func (a *App) Run(ctx context.Context) error {
	addr := a.Config.Addr()
	errCh := make(chan error, 1)

	a.Log.Info("Starting server",
		"addr", addr,
		"render_mode", a.Config.RenderMode(),
		"version", a.Config.Build.BuildVersion)

	go func() {
		defer close(errCh)
		if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%w on %s: %w", domain.ErrListenFailed, addr, err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Warn("Graceful shutdown initiated", "grace_period", a.Config.ShutdownGracePeriod())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownGracePeriod())
	defer cancel()

	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}

	a.Log.Info("Server shutdown", "uptime", a.GetUptime())
	return nil
}

func (a *App) GetUptime() string {
	return time.Since(a.StartTime).Round(time.Second).String()
}
