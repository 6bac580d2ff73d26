package keepalive

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"order-followup/internal/domain/cadence"
	"order-followup/internal/domain/channel"
	"order-followup/internal/infra"
	"order-followup/internal/pkg/clock"
	"order-followup/internal/pkg/config"
	"order-followup/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChannelAPI interface {
	Renew(ctx context.Context, channelID string) (channel.Renewal, error)
	ListEvents(ctx context.Context, channelID string, since, until time.Time) ([]channel.InboundEvent, error)
}

// Session holds the run-once flag for one client session.
// A new session is the only way to run the check again.
type Session struct {
	checked atomic.Bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) claim() bool {
	return s.checked.CompareAndSwap(false, true)
}

// Scheduler keeps the inbound channel watch alive and backfills replies it may have missed.
// Nothing it does is allowed to fail the caller.
type Scheduler struct {
	uow    shared.UnitOfWork
	api    ChannelAPI
	clock  clock.Clock
	cfg    config.KeepAliveConfig
	loc    *time.Location
	logger *slog.Logger
}

func NewScheduler(uow shared.UnitOfWork, api ChannelAPI, clk clock.Clock, cfg config.Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		uow:    uow,
		api:    api,
		clock:  clk,
		cfg:    cfg.KeepAlive,
		loc:    cfg.Cadence.Location(),
		logger: logger.With("component", "keepalive", "channel_id", cfg.KeepAlive.ChannelID),
	}
}

// Start runs Check once for the session after the start delay, in the background.
// The returned channel closes when that run is over; it is already closed
// when the session had been checked before.
func (s *Scheduler) Start(ctx context.Context, session *Session) <-chan struct{} {
	done := make(chan struct{})
	if !session.claim() {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("keep-alive check panicked", "panic", fmt.Sprint(r))
			}
		}()

		if s.cfg.StartDelay > 0 {
			timer := time.NewTimer(s.cfg.StartDelay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
		}
		s.Check(ctx)
	}()
	return done
}

// Run starts the first session and, when a session interval is set, a fresh one on every interval.
func (s *Scheduler) Run(ctx context.Context) {
	s.Start(ctx, NewSession())
	if s.cfg.SessionInterval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(s.cfg.SessionInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Start(ctx, NewSession())
		}
	}
}

// Check renews the watch when needed and backfills events up to now. Failures are logged only.
func (s *Scheduler) Check(ctx context.Context) {
	channelID := s.cfg.ChannelID
	now := s.clock.Now()

	var sub *channel.Subscription
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		sub, err = tx.ChannelSubscriptions().Get(ctx, tx.DB(), channelID)
		return err
	})
	if err != nil {
		s.logger.Error("failed to load channel subscription", "error", err.Error())
		return
	}

	if sub.NeedsRenewal(now, s.cfg.RenewWithin) {
		s.renew(ctx, channelID)
	}
	s.backfill(ctx, channelID, sub.BackfillFrom(now, s.cfg.BackfillCap), now)
}

func (s *Scheduler) renew(ctx context.Context, channelID string) {
	renewal, err := s.api.Renew(ctx, channelID)
	if err != nil {
		s.logger.Warn("channel renew failed", "error", err.Error())
		return
	}
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ChannelSubscriptions().SaveRenewal(ctx, tx.DB(), channelID, renewal)
	})
	if err != nil {
		s.logger.Error("failed to save channel renewal", "error", err.Error())
		return
	}
	s.logger.Info("channel watch renewed", "expires_at", renewal.ExpiresAt.Format(time.RFC3339))
}

// backfill records new events, reschedules the work items they touched and
// advances the watermark in one transaction.
func (s *Scheduler) backfill(ctx context.Context, channelID string, from, to time.Time) {
	events, err := s.api.ListEvents(ctx, channelID, from, to)
	if err != nil {
		s.logger.Warn("channel backfill failed", "from", from.Format(time.RFC3339), "error", err.Error())
		return
	}

	var recorded, contacts int
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		recorded, contacts = 0, 0
		var touched []uuid.UUID
		seen := make(map[uuid.UUID]struct{})
		for _, ev := range events {
			inserted, err := tx.ChannelSubscriptions().InsertEvent(ctx, tx.DB(), channelID, ev)
			if err != nil {
				return err
			}
			if !inserted {
				continue
			}
			recorded++
			if ev.WorkItemID == nil {
				continue
			}
			err = tx.WorkItems().RecordInboundContact(ctx, tx.DB(), *ev.WorkItemID, ev.ReceivedAt)
			if infra.IsKind(err, infra.KindNotFound) {
				s.logger.Debug("inbound event for unknown or older contact", "event_id", ev.EventID)
				continue
			}
			if err != nil {
				return err
			}
			contacts++
			if _, ok := seen[*ev.WorkItemID]; !ok {
				seen[*ev.WorkItemID] = struct{}{}
				touched = append(touched, *ev.WorkItemID)
			}
		}
		if err := s.reschedule(ctx, tx, touched, to); err != nil {
			return err
		}
		return tx.ChannelSubscriptions().SaveBackfilledThrough(ctx, tx.DB(), channelID, to)
	})
	if err != nil {
		s.logger.Error("failed to record backfilled events", "error", err.Error())
		return
	}
	s.logger.Info("channel backfill complete",
		"from", from.Format(time.RFC3339),
		"to", to.Format(time.RFC3339),
		"fetched", len(events),
		"recorded", recorded,
		"contacts", contacts)
}

// reschedule re-resolves the next follow-up of every work item whose last contact moved.
// A rule set that cannot resolve an item leaves its date as it was.
func (s *Scheduler) reschedule(ctx context.Context, tx shared.Tx, ids []uuid.UUID, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	rules, err := tx.Reads().CadenceRules(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		item, err := tx.WorkItems().GetForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		res, err := cadence.Resolve(rules, item.CadenceSubject(), now, s.loc)
		if err != nil {
			s.logger.Error("cannot reschedule work item after inbound contact",
				"work_item_id", id.String(), "error", err.Error())
			continue
		}
		item.ApplyResolution(res)
		if err := tx.WorkItems().UpdateFollowUp(ctx, tx.DB(), item); err != nil {
			return err
		}
	}
	return nil
}
