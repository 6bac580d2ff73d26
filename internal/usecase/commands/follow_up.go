package commands

import (
	"context"
	"time"

	"order-followup/internal/domain/cadence"
	"order-followup/internal/domain/workitem"
	"order-followup/internal/pkg/clock"
	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/usecase/shared"

	"github.com/google/uuid"
)

type FollowUpResult struct {
	WorkItemID     uuid.UUID
	LastContactAt  *time.Time
	NextFollowUpAt *time.Time
	Paused         bool
	RuleKey        string
}

type SnoozeResult struct {
	WorkItemID   uuid.UUID
	SnoozedUntil time.Time
	Days         int
}

type FollowUpCommands interface {
	// MarkFollowedUp records a contact now and reschedules from the cadence rules.
	MarkFollowedUp(ctx context.Context, workItemID uuid.UUID) (*FollowUpResult, error)
	// Snooze pushes the next follow-up out by plain calendar days, ignoring the rules.
	Snooze(ctx context.Context, workItemID uuid.UUID, days int) (*SnoozeResult, error)
	// Recompute reschedules from the rules without recording a contact.
	Recompute(ctx context.Context, workItemID uuid.UUID) (*FollowUpResult, error)
}

type followUpCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewFollowUpCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) FollowUpCommands {
	return &followUpCommandsImpl{
		uow:   uow,
		clock: clk,
		loc:   cfg.Cadence.Location(),
	}
}

func (uc *followUpCommandsImpl) MarkFollowedUp(ctx context.Context, workItemID uuid.UUID) (*FollowUpResult, error) {
	return uc.reschedule(ctx, workItemID, true)
}

func (uc *followUpCommandsImpl) Recompute(ctx context.Context, workItemID uuid.UUID) (*FollowUpResult, error) {
	return uc.reschedule(ctx, workItemID, false)
}

func (uc *followUpCommandsImpl) reschedule(ctx context.Context, workItemID uuid.UUID, contacted bool) (*FollowUpResult, error) {
	var result *FollowUpResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.WorkItems().GetForUpdate(ctx, tx.DB(), workItemID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if contacted {
			item.MarkFollowedUp(now)
		}

		rules, err := tx.Reads().CadenceRules(ctx)
		if err != nil {
			return err
		}
		res, err := cadence.Resolve(rules, item.CadenceSubject(), now, uc.loc)
		if err != nil {
			return err
		}
		item.ApplyResolution(res)

		if err := tx.WorkItems().UpdateFollowUp(ctx, tx.DB(), item); err != nil {
			return err
		}
		result = followUpResult(item, res)
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (uc *followUpCommandsImpl) Snooze(ctx context.Context, workItemID uuid.UUID, days int) (*SnoozeResult, error) {
	if days <= 0 {
		return nil, errs.Mark(workitem.ErrInvalidSnoozeDays, errs.ErrValidation)
	}

	var result *SnoozeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.WorkItems().GetForUpdate(ctx, tx.DB(), workItemID)
		if err != nil {
			return err
		}
		until, err := item.Snooze(uc.clock.Now(), days)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.WorkItems().UpdateFollowUp(ctx, tx.DB(), item); err != nil {
			return err
		}
		result = &SnoozeResult{WorkItemID: item.ID(), SnoozedUntil: until, Days: days}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func followUpResult(item *workitem.WorkItem, res cadence.Resolution) *FollowUpResult {
	return &FollowUpResult{
		WorkItemID:     item.ID(),
		LastContactAt:  item.LastContactAt(),
		NextFollowUpAt: item.NextFollowUpAt(),
		Paused:         res.Paused,
		RuleKey:        res.RuleKey,
	}
}
