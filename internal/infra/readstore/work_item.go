package readstore

import (
	"context"
	"time"

	"order-followup/internal/infra"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"
	"order-followup/internal/usecase/queries"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
)

type WorkItemReadQueries interface {
	ListDueWorkItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDueWorkItemsParams) ([]sqlc.ListDueWorkItemsRow, error)
	ListDueWorkItemsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDueWorkItemsKeysetParams) ([]sqlc.ListDueWorkItemsKeysetRow, error)
}

type WorkItemReadStore struct {
	queries WorkItemReadQueries
	db      sqlc.DBTX
}

func NewWorkItemReadStore(queries WorkItemReadQueries, db sqlc.DBTX) *WorkItemReadStore {
	return &WorkItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WorkItemReadStore) ListDue(ctx context.Context, now time.Time, limit int32) ([]*queries.DueWorkItemView, error) {
	rows, err := r.queries.ListDueWorkItems(ctx, r.db, sqlc.ListDueWorkItemsParams{
		DueBefore: pgconv.TimeToPgtype(now),
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due work items", err)
	}
	return slice.Map(rows, func(_ int, row sqlc.ListDueWorkItemsRow) *queries.DueWorkItemView {
		return toDueWorkItemView(sqlc.ListDueWorkItemsKeysetRow(row))
	}), nil
}

func (r *WorkItemReadStore) ListDueAfter(ctx context.Context, now time.Time, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.DueWorkItemView, error) {
	rows, err := r.queries.ListDueWorkItemsKeyset(ctx, r.db, sqlc.ListDueWorkItemsKeysetParams{
		DueBefore: pgconv.TimeToPgtype(now),
		AfterAt:   pgconv.TimeToPgtype(afterAt),
		AfterID:   afterID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due work items after cursor", err)
	}
	return slice.Map(rows, func(_ int, row sqlc.ListDueWorkItemsKeysetRow) *queries.DueWorkItemView {
		return toDueWorkItemView(row)
	}), nil
}

func toDueWorkItemView(row sqlc.ListDueWorkItemsKeysetRow) *queries.DueWorkItemView {
	return &queries.DueWorkItemView{
		ID:             row.ID,
		Type:           row.ItemType,
		Status:         row.Status,
		EventDate:      pgconv.DatePtrFromPgtype(row.EventDate),
		LastContactAt:  pgconv.TimePtrFromPgtype(row.LastContactAt),
		NextFollowUpAt: pgconv.TimeFromPgtype(row.NextFollowUpAt),
	}
}
