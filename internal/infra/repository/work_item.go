package repository

import (
	"context"
	"time"

	"order-followup/internal/domain/workitem"
	"order-followup/internal/infra"
	"order-followup/internal/infra/repository/converter"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WorkItemWriteQueries interface {
	GetWorkItemForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetWorkItemForUpdateRow, error)
	UpdateWorkItemFollowUp(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateWorkItemFollowUpParams) (int64, error)
	RecordWorkItemInboundContact(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordWorkItemInboundContactParams) (int64, error)
}

type WorkItemRepository struct {
	queries WorkItemWriteQueries
	db      sqlc.DBTX
}

func NewWorkItemRepository(queries WorkItemWriteQueries, db sqlc.DBTX) *WorkItemRepository {
	return &WorkItemRepository{
		queries: queries,
		db:      db,
	}
}

// GetForUpdate row-locks the item so concurrent follow-up writes serialize.
func (r *WorkItemRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*workitem.WorkItem, error) {
	row, err := r.queries.GetWorkItemForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("work item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load work item", err)
	}
	item, err := converter.WorkItemFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored work item is invalid", err)
	}
	return item, nil
}

func (r *WorkItemRepository) UpdateFollowUp(ctx context.Context, tx sqlc.DBTX, item *workitem.WorkItem) error {
	n, err := r.queries.UpdateWorkItemFollowUp(ctx, tx, converter.WorkItemToFollowUpParams(item))
	if err != nil {
		return infra.WrapRepoErr("failed to update work item follow-up", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("work item not found", nil, infra.KindNotFound)
	}
	return nil
}

// RecordInboundContact only moves last_contact_at forward.
func (r *WorkItemRepository) RecordInboundContact(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	n, err := r.queries.RecordWorkItemInboundContact(ctx, tx, sqlc.RecordWorkItemInboundContactParams{
		ContactAt: pgconv.TimeToPgtype(at),
		ID:        id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record inbound contact", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("work item not found", nil, infra.KindNotFound)
	}
	return nil
}
