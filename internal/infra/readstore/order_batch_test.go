//go:build unit

package readstore

import (
	"context"
	"testing"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/infra"
	sqlc "order-followup/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderBatchReadQueries struct {
	mock.Mock
}

func (m *MockOrderBatchReadQueries) GetOrderBatchState(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderBatchStateRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetOrderBatchStateRow), args.Error(1)
}

func TestOrderBatchStateByBatchID(t *testing.T) {
	batchID := uuid.New()

	tests := []struct {
		name     string
		row      sqlc.GetOrderBatchStateRow
		mockErr  error
		want     *batchemail.OrderState
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "with tracking",
			row:  sqlc.GetOrderBatchStateRow{ID: batchID, Status: "shipped", TrackingNumber: pgtype.Text{String: " 1Z999 ", Valid: true}},
			want: &batchemail.OrderState{BatchStatus: "shipped", HasTracking: true, TrackingNumber: "1Z999"},
		},
		{
			name: "blank tracking counts as none",
			row:  sqlc.GetOrderBatchStateRow{ID: batchID, Status: "shipped", TrackingNumber: pgtype.Text{String: "  ", Valid: true}},
			want: &batchemail.OrderState{BatchStatus: "shipped"},
		},
		{
			name: "null tracking",
			row:  sqlc.GetOrderBatchStateRow{ID: batchID, Status: "in_production"},
			want: &batchemail.OrderState{BatchStatus: "in_production"},
		},
		{name: "missing batch", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockOrderBatchReadQueries)
			q.On("GetOrderBatchState", mock.Anything, mock.Anything, batchID).Return(tt.row, tt.mockErr)

			got, err := NewOrderBatchReadStore(q, nil).StateByBatchID(context.Background(), batchID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
