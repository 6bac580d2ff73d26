package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/infra"
	"order-followup/internal/pkg/clock"
	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/pkg/mailtmpl"
	"order-followup/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	reasonLeaseExpired   = "claim lease expired"
	reasonBatchNotFound  = "order batch not found"
	reasonSendTimedOut   = "send timed out"
	reasonCheckTimedOut  = "precondition check timed out"
	finalizeTimeout      = 10 * time.Second
	defaultBatchSize     = 50
	defaultPollInterval  = 30 * time.Second
	defaultSendTimeout   = 20 * time.Second
	minLeaseOverSendTime = time.Minute
)

// Worker claims due batch emails and resolves each one to sent, skipped or failed.
// Several workers may share one store; the claim is the only coordination.
type Worker struct {
	uow      shared.UnitOfWork
	mailer   Mailer
	renderer Renderer
	clock    clock.Clock
	cfg      config.DispatchConfig
	logger   *slog.Logger
	metrics  *Metrics
}

func NewWorker(
	uow shared.UnitOfWork,
	mailer Mailer,
	renderer Renderer,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
	metrics *Metrics,
) *Worker {
	dc := cfg.Dispatch
	if dc.WorkerID == "" {
		dc.WorkerID = defaultWorkerID()
	}
	if dc.BatchSize <= 0 {
		dc.BatchSize = defaultBatchSize
	}
	if dc.Concurrency <= 0 {
		dc.Concurrency = 1
	}
	if dc.PollInterval <= 0 {
		dc.PollInterval = defaultPollInterval
	}
	if dc.SendTimeout <= 0 {
		dc.SendTimeout = defaultSendTimeout
	}
	// A lease shorter than a send would let the reaper fail tasks that are still in flight.
	if dc.ClaimLease < dc.SendTimeout+finalizeTimeout {
		dc.ClaimLease = dc.SendTimeout + finalizeTimeout + minLeaseOverSendTime
	}

	return &Worker{
		uow:      uow,
		mailer:   mailer,
		renderer: renderer,
		clock:    clk,
		cfg:      dc,
		logger:   logger.With("component", "dispatch", "worker_id", dc.WorkerID),
		metrics:  metrics,
	}
}

func defaultWorkerID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "worker"
	}
	return fmt.Sprintf("%s-%d", host, os.Getpid())
}

// Run ticks until ctx is cancelled. Sends already in flight finish under their own timeout.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("dispatch worker started",
		"poll_interval", w.cfg.PollInterval.String(),
		"batch_size", w.cfg.BatchSize,
		"concurrency", w.cfg.Concurrency)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if err := w.Tick(ctx); err != nil && ctx.Err() == nil {
			w.logger.Error("dispatch tick failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			w.logger.Info("dispatch worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// Tick reaps expired claims, claims one batch of due tasks and resolves all of them.
func (w *Worker) Tick(ctx context.Context) error {
	if err := w.reap(ctx); err != nil {
		w.logger.Error("failed to reap expired claims", "error", err.Error())
	}

	now := w.clock.Now()
	var tasks []*batchemail.Task
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		tasks, err = tx.BatchEmails().ClaimDue(ctx, tx.DB(), now, w.cfg.BatchSize, w.cfg.WorkerID)
		return err
	})
	if err != nil {
		return errs.Wrap(err, "claim due batch emails")
	}
	if len(tasks) == 0 {
		return nil
	}

	w.metrics.claimed.Add(float64(len(tasks)))
	w.logger.Debug("claimed batch emails", "count", len(tasks))

	var g errgroup.Group
	g.SetLimit(w.cfg.Concurrency)
	for _, task := range tasks {
		g.Go(func() error {
			w.process(ctx, task)
			return nil
		})
	}
	return g.Wait()
}

func (w *Worker) process(ctx context.Context, task *batchemail.Task) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.cfg.SendTimeout)
	defer cancel()

	logger := w.logger.With(
		"queue_id", task.QueueID().String(),
		"batch_id", task.BatchID().String(),
		"email_type", task.EmailType().String())

	to, reason := w.deliver(ctx, task)
	w.finalize(ctx, logger, task, to, reason)
}

// deliver re-checks the enqueue-time snapshot and sends when it still holds.
func (w *Worker) deliver(ctx context.Context, task *batchemail.Task) (batchemail.Status, *string) {
	state, err := w.uow.CommandReads().OrderStateByBatchID(ctx, task.BatchID())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return batchemail.StatusSkipped, strPtr(reasonBatchNotFound)
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return batchemail.StatusFailed, strPtr(reasonCheckTimedOut)
		default:
			return batchemail.StatusFailed, strPtr("precondition check failed: " + err.Error())
		}
	}

	if ok, why := task.Preconditions().Check(*state); !ok {
		return batchemail.StatusSkipped, strPtr(why)
	}

	rendered, err := w.renderer.Render(task.EmailType(), mailtmpl.Data{
		FirstName:      task.Recipient().FirstName(),
		TrackingNumber: state.TrackingNumber,
	})
	if err != nil {
		return batchemail.StatusFailed, strPtr("render failed: " + err.Error())
	}

	start := time.Now()
	err = w.mailer.Send(ctx, Message{
		QueueID:   task.QueueID(),
		EmailType: task.EmailType(),
		To:        task.Recipient().Email(),
		ToName:    task.Recipient().Name(),
		Subject:   rendered.Subject,
		HTML:      rendered.HTML,
	})
	w.metrics.sendDuration.WithLabelValues(task.EmailType().String()).Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return batchemail.StatusFailed, strPtr(reasonSendTimedOut)
		}
		return batchemail.StatusFailed, strPtr(err.Error())
	}
	return batchemail.StatusSent, nil
}

// finalize records the outcome even when the send context has already expired.
func (w *Worker) finalize(ctx context.Context, logger *slog.Logger, task *batchemail.Task, to batchemail.Status, reason *string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	var moved bool
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		moved, err = tx.BatchEmails().Transition(ctx, tx.DB(), task.QueueID(), batchemail.StatusSending, to, reason, w.clock.Now())
		return err
	})
	if err != nil {
		logger.Error("failed to record batch email outcome", "outcome", to.String(), "error", err.Error())
		return
	}
	if !moved {
		logger.Warn("batch email left sending before its outcome was recorded", "outcome", to.String())
		return
	}

	w.metrics.outcomes.WithLabelValues(task.EmailType().String(), to.String()).Inc()
	if reason != nil {
		logger.Info("batch email resolved", "outcome", to.String(), "reason", *reason)
		return
	}
	logger.Info("batch email resolved", "outcome", to.String())
}

func (w *Worker) reap(ctx context.Context) error {
	now := w.clock.Now()
	var ids []uuid.UUID
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.BatchEmails().ReapExpired(ctx, tx.DB(), now.Add(-w.cfg.ClaimLease), reasonLeaseExpired, now)
		return err
	})
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		w.metrics.reaped.Add(float64(len(ids)))
		w.logger.Warn("failed batch emails whose claim lease expired", "count", len(ids))
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
