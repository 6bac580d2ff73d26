package readstore

import (
	"context"
	"strings"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/infra"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderBatchReadQueries interface {
	GetOrderBatchState(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderBatchStateRow, error)
}

type OrderBatchReadStore struct {
	queries OrderBatchReadQueries
	db      sqlc.DBTX
}

func NewOrderBatchReadStore(queries OrderBatchReadQueries, db sqlc.DBTX) *OrderBatchReadStore {
	return &OrderBatchReadStore{
		queries: queries,
		db:      db,
	}
}

// StateByBatchID reads the live batch state; a blank tracking number counts as none.
func (r *OrderBatchReadStore) StateByBatchID(ctx context.Context, batchID uuid.UUID) (*batchemail.OrderState, error) {
	row, err := r.queries.GetOrderBatchState(ctx, r.db, batchID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order batch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load order batch state", err)
	}
	tracking := strings.TrimSpace(pgconv.StringFromPgtype(row.TrackingNumber))
	return &batchemail.OrderState{
		BatchStatus:    row.Status,
		HasTracking:    tracking != "",
		TrackingNumber: tracking,
	}, nil
}
