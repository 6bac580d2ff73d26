//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"order-followup/internal/infra"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkItemWriteQueries struct {
	mock.Mock
}

func (m *MockWorkItemWriteQueries) GetWorkItemForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetWorkItemForUpdateRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetWorkItemForUpdateRow), args.Error(1)
}

func (m *MockWorkItemWriteQueries) UpdateWorkItemFollowUp(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateWorkItemFollowUpParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkItemWriteQueries) RecordWorkItemInboundContact(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordWorkItemInboundContactParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestWorkItemGetForUpdate(t *testing.T) {
	id := uuid.New()
	next := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		row      sqlc.GetWorkItemForUpdateRow
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row: sqlc.GetWorkItemForUpdateRow{
				ID:             id,
				ItemType:       "production_order",
				Status:         "in_production",
				NextFollowUpAt: pgconv.TimeToPgtype(next),
			},
		},
		{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
		{
			name:     "unknown stored type",
			row:      sqlc.GetWorkItemForUpdateRow{ID: id, ItemType: "mystery", Status: "x"},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockWorkItemWriteQueries)
			q.On("GetWorkItemForUpdate", mock.Anything, mock.Anything, id).Return(tt.row, tt.mockErr)

			item, err := NewWorkItemRepository(q, nil).GetForUpdate(context.Background(), nil, id)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, item.ID())
			require.NotNil(t, item.NextFollowUpAt())
			assert.True(t, next.Equal(*item.NextFollowUpAt()))
		})
	}
}

func TestWorkItemRecordInboundContact(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 3, 11, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "moves contact forward", affected: 1},
		{name: "unknown or newer contact", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockWorkItemWriteQueries)
			q.On("RecordWorkItemInboundContact", mock.Anything, mock.Anything, sqlc.RecordWorkItemInboundContactParams{
				ContactAt: pgconv.TimeToPgtype(at),
				ID:        id,
			}).Return(tt.affected, tt.mockErr)

			err := NewWorkItemRepository(q, nil).RecordInboundContact(context.Background(), nil, id, at)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}
