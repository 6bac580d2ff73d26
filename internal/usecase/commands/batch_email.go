package commands

import (
	"context"
	"time"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/infra"
	"order-followup/internal/pkg/clock"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnqueueInput struct {
	BatchID             uuid.UUID
	WorkItemID          uuid.UUID
	EmailType           string
	RecipientEmail      string
	RecipientName       string
	ScheduledSendAt     time.Time
	ExpectedBatchStatus *string
	ExpectedHasTracking *bool
}

type EnqueueResult struct {
	QueueID         uuid.UUID
	Status          string
	ScheduledSendAt time.Time
	// Duplicate is true when an unresolved task already held the same key.
	Duplicate bool
}

type CancelInput struct {
	QueueID uuid.UUID
	Reason  *string
}

type BatchEmailCommands interface {
	Enqueue(ctx context.Context, in EnqueueInput) (*EnqueueResult, error)
	// Cancel fails with ErrAlreadyResolved once the task has left the queued state.
	Cancel(ctx context.Context, in CancelInput) error
}

type batchEmailCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBatchEmailCommands(uow shared.UnitOfWork, clk clock.Clock) BatchEmailCommands {
	return &batchEmailCommandsImpl{uow: uow, clock: clk}
}

// enqueueAttempts covers the window where the pending row we collided with
// is claimed or cancelled before we can read it back.
const enqueueAttempts = 2

func (uc *batchEmailCommandsImpl) Enqueue(ctx context.Context, in EnqueueInput) (*EnqueueResult, error) {
	task, err := batchemail.NewTask(batchemail.NewTaskParams{
		BatchID:         in.BatchID,
		WorkItemID:      in.WorkItemID,
		EmailType:       in.EmailType,
		RecipientEmail:  in.RecipientEmail,
		RecipientName:   in.RecipientName,
		ScheduledSendAt: in.ScheduledSendAt,
		Preconditions: batchemail.Preconditions{
			ExpectedBatchStatus: in.ExpectedBatchStatus,
			ExpectedHasTracking: in.ExpectedHasTracking,
		},
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var result *EnqueueResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var (
			stored  *batchemail.Task
			created bool
			derr    error
		)
		for range enqueueAttempts {
			stored, created, derr = tx.BatchEmails().Enqueue(ctx, tx.DB(), task)
			if derr == nil || !infra.IsKind(derr, infra.KindConflict) {
				break
			}
		}
		if derr != nil {
			return derr
		}
		result = &EnqueueResult{
			QueueID:         stored.QueueID(),
			Status:          stored.Status().String(),
			ScheduledSendAt: stored.ScheduledSendAt(),
			Duplicate:       !created,
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (uc *batchEmailCommandsImpl) Cancel(ctx context.Context, in CancelInput) error {
	if in.QueueID == uuid.Nil {
		return errs.Mark(errs.New("queue id is required"), errs.ErrValidation)
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BatchEmails().Cancel(ctx, tx.DB(), in.QueueID, in.Reason, uc.clock.Now())
	})
	return classify(err)
}
