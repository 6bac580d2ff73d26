package readstore

import (
	"context"

	"order-followup/internal/infra"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"
	"order-followup/internal/usecase/queries"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
)

type BatchEmailReadQueries interface {
	ListBatchEmailTasksByBatch(ctx context.Context, db sqlc.DBTX, batchID uuid.UUID) ([]sqlc.BatchEmailQueue, error)
}

type BatchEmailReadStore struct {
	queries BatchEmailReadQueries
	db      sqlc.DBTX
}

func NewBatchEmailReadStore(queries BatchEmailReadQueries, db sqlc.DBTX) *BatchEmailReadStore {
	return &BatchEmailReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BatchEmailReadStore) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*queries.BatchEmailView, error) {
	rows, err := r.queries.ListBatchEmailTasksByBatch(ctx, r.db, batchID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list batch email tasks", err)
	}
	return slice.Map(rows, func(_ int, row sqlc.BatchEmailQueue) *queries.BatchEmailView {
		return toBatchEmailView(row)
	}), nil
}

func toBatchEmailView(row sqlc.BatchEmailQueue) *queries.BatchEmailView {
	return &queries.BatchEmailView{
		QueueID:             row.QueueID,
		BatchID:             row.BatchID,
		WorkItemID:          row.WorkItemID,
		EmailType:           row.EmailType,
		RecipientEmail:      row.RecipientEmail,
		RecipientName:       row.RecipientName,
		ScheduledSendAt:     pgconv.TimeFromPgtype(row.ScheduledSendAt),
		Status:              row.Status,
		ExpectedBatchStatus: pgconv.StringPtrFromPgtype(row.ExpectedBatchStatus),
		ExpectedHasTracking: pgconv.BoolPtrFromPgtype(row.ExpectedHasTracking),
		CancelReason:        pgconv.StringPtrFromPgtype(row.CancelReason),
		LastError:           pgconv.StringPtrFromPgtype(row.LastError),
		ClaimedAt:           pgconv.TimePtrFromPgtype(row.ClaimedAt),
		ResolvedAt:          pgconv.TimePtrFromPgtype(row.ResolvedAt),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
