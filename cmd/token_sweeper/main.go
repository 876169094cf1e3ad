package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"
	"userhub/internal/app/deps"
	appservices "userhub/internal/app/services"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/services"

	purge "userhub/internal/core/services/purge_password_reset_tokens"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, closeDeps := deps.InitDeps()
	defer closeDeps()

	period := d.Config.PasswordResetTokenPurgePeriod
	d.Logger.Info(ctx, "Password reset token sweeper has started.", logging.Entry("period", period.String()))

	sweep(ctx, d.Logger, appservices.InitServices(d).PurgePasswordResetTokens, period)

	d.Logger.Info(context.Background(), "Password reset token sweeper has stopped.")
}

// sweep purges once immediately and then on every tick until ctx is done.
func sweep(
	ctx context.Context,
	log logging.Logger,
	purgeTokens services.Service[purge.Input, purge.Result],
	period time.Duration,
) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		if _, err := purgeTokens.Run(ctx, purge.Input{}); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Could not purge password reset tokens.", logging.Entry("err", err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
