package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"userhub/internal/app"
	"userhub/internal/app/deps"
	"userhub/internal/app/services"

	dl "userhub/internal/core/domain/logging"
)

const shutdownTimeout = 20 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, closeDeps := deps.InitDeps()
	server := app.InitHttpServer(d, services.InitServices(d))

	serveErr := make(chan error, 1)
	go func() {
		d.Logger.Info(
			ctx,
			"HTTP server is listening.",
			dl.Entry("address", server.Addr),
			dl.Entry("isTestMode", d.Config.IsTestMode),
		)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			d.Logger.Error(context.Background(), "HTTP server failed.", dl.Entry("err", err))
		}
	case <-ctx.Done():
		d.Logger.Info(context.Background(), "Shutdown signal received.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		d.Logger.Error(shutdownCtx, "HTTP server did not shut down cleanly.", dl.Entry("err", err))
	}

	closeDeps()
	d.Logger.Info(shutdownCtx, "HTTP server has shut down.")
}
