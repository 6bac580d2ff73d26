package repository

import (
	"context"
	"time"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/infra"
	"order-followup/internal/infra/repository/converter"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
)

type BatchEmailWriteQueries interface {
	InsertBatchEmailTask(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBatchEmailTaskParams) (sqlc.BatchEmailQueue, error)
	GetPendingBatchEmailTask(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPendingBatchEmailTaskParams) (sqlc.BatchEmailQueue, error)
	GetBatchEmailTask(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (sqlc.BatchEmailQueue, error)
	CancelBatchEmailTask(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBatchEmailTaskParams) (int64, error)
	ClaimDueBatchEmailTasks(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueBatchEmailTasksParams) ([]sqlc.BatchEmailQueue, error)
	TransitionBatchEmailTask(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionBatchEmailTaskParams) (int64, error)
	ReapExpiredBatchEmailClaims(ctx context.Context, db sqlc.DBTX, arg sqlc.ReapExpiredBatchEmailClaimsParams) ([]uuid.UUID, error)
}

type BatchEmailRepository struct {
	queries BatchEmailWriteQueries
	db      sqlc.DBTX
}

func NewBatchEmailRepository(queries BatchEmailWriteQueries, db sqlc.DBTX) *BatchEmailRepository {
	return &BatchEmailRepository{
		queries: queries,
		db:      db,
	}
}

// Enqueue relies on the partial unique index over queued tasks, so two racing
// enqueues for the same key end with one row and the loser reads it back.
func (r *BatchEmailRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, task *batchemail.Task) (*batchemail.Task, bool, error) {
	row, err := r.queries.InsertBatchEmailTask(ctx, tx, converter.TaskToInsertParams(task))
	if err == nil {
		return converter.TaskFromRow(row), true, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, false, infra.WrapRepoErr("failed to insert batch email task", err)
	}

	existing, err := r.queries.GetPendingBatchEmailTask(ctx, tx, sqlc.GetPendingBatchEmailTaskParams{
		BatchID:    task.BatchID(),
		WorkItemID: task.WorkItemID(),
		EmailType:  task.EmailType().String(),
	})
	if err != nil {
		// The pending row was resolved between our insert and this read.
		if pgconv.IsNoRows(err) {
			return nil, false, infra.WrapRepoErr("pending batch email task changed concurrently", err, infra.KindConflict)
		}
		return nil, false, infra.WrapRepoErr("failed to load pending batch email task", err)
	}
	return converter.TaskFromRow(existing), false, nil
}

func (r *BatchEmailRepository) Cancel(ctx context.Context, tx sqlc.DBTX, queueID uuid.UUID, reason *string, now time.Time) error {
	n, err := r.queries.CancelBatchEmailTask(ctx, tx, sqlc.CancelBatchEmailTaskParams{
		CancelReason: pgconv.StringPtrToPgtype(reason),
		ResolvedAt:   pgconv.TimeToPgtype(now),
		QueueID:      queueID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel batch email task", err)
	}
	if n == 1 {
		return nil
	}

	row, err := r.queries.GetBatchEmailTask(ctx, tx, queueID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("batch email task not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to load batch email task", err)
	}
	return infra.WrapRepoErr("batch email task is "+row.Status, nil, infra.KindConflict)
}

func (r *BatchEmailRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32, workerID string) ([]*batchemail.Task, error) {
	rows, err := r.queries.ClaimDueBatchEmailTasks(ctx, tx, sqlc.ClaimDueBatchEmailTasksParams{
		ClaimedBy: pgconv.StringToPgtype(workerID),
		ClaimedAt: pgconv.TimeToPgtype(now),
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due batch email tasks", err)
	}
	return slice.Map(rows, func(_ int, row sqlc.BatchEmailQueue) *batchemail.Task {
		return converter.TaskFromRow(row)
	}), nil
}

func (r *BatchEmailRepository) Transition(ctx context.Context, tx sqlc.DBTX, queueID uuid.UUID, from, to batchemail.Status, lastError *string, now time.Time) (bool, error) {
	if !from.CanTransitionTo(to) {
		return false, infra.WrapRepoErr("illegal transition "+from.String()+" -> "+to.String(), batchemail.ErrInvalidTransition, infra.KindConflict)
	}
	n, err := r.queries.TransitionBatchEmailTask(ctx, tx, sqlc.TransitionBatchEmailTaskParams{
		ToStatus:   to.String(),
		LastError:  pgconv.StringPtrToPgtype(lastError),
		ResolvedAt: pgconv.TimeToPgtype(now),
		QueueID:    queueID,
		FromStatus: from.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition batch email task", err)
	}
	return n == 1, nil
}

func (r *BatchEmailRepository) ReapExpired(ctx context.Context, tx sqlc.DBTX, claimedBefore time.Time, reason string, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ReapExpiredBatchEmailClaims(ctx, tx, sqlc.ReapExpiredBatchEmailClaimsParams{
		LastError:     pgconv.StringToPgtype(reason),
		ResolvedAt:    pgconv.TimeToPgtype(now),
		ClaimedBefore: pgconv.TimeToPgtype(claimedBefore),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reap expired batch email claims", err)
	}
	return ids, nil
}
