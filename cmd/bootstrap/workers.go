package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"order-followup/internal/pkg/config"
	"order-followup/internal/usecase/dispatch"
	"order-followup/internal/usecase/keepalive"

	"go.uber.org/fx"
)

var WorkersModule = fx.Module("workers",
	fx.Invoke(StartWorkers),
)

// StartWorkers runs the dispatch worker and keep-alive scheduler for the lifetime of the app.
// OnStop cancels both and waits for in-flight work, bounded by the stop context.
func StartWorkers(lc fx.Lifecycle, cfg config.Config, worker *dispatch.Worker, scheduler *keepalive.Scheduler, logger *slog.Logger) {
	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			if cfg.Dispatch.Enabled {
				wg.Add(1)
				go func() {
					defer wg.Done()
					worker.Run(ctx)
				}()
			} else {
				logger.Info("dispatch worker disabled")
			}

			if cfg.KeepAlive.Enabled {
				wg.Add(1)
				go func() {
					defer wg.Done()
					scheduler.Run(ctx)
				}()
			} else {
				logger.Info("keep-alive scheduler disabled")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				logger.Warn("background workers did not stop in time")
				return ctx.Err()
			}
		},
	})
}
