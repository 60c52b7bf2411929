package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodcourt/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartJanitorJob periodically deletes carts that have not been touched within
// the TTL. Orders are never affected; abandoned carts are the only state the
// request path cannot clean up on its own.
type CartJanitorJob struct {
	handler commands.PurgeStaleCartsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartJanitorJob creates a janitor purging carts older than ttl.
func NewCartJanitorJob(
	handler commands.PurgeStaleCartsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *CartJanitorJob {
	return &CartJanitorJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cart_janitor_job"),
	}
}

// Start schedules the janitor to run at the top of every hour.
func (j *CartJanitorJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeStaleCartsCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart janitor misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart janitor run failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged stale carts", "count", removed, "ttl", j.ttl)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart janitor job started (running hourly)", "ttl", j.ttl)
	return nil
}

// Stop stops the cart janitor job.
func (j *CartJanitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart janitor job stopped")
}
