//go:build unit

package readstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"order-followup/internal/infra"
	sqlc "order-followup/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCadenceRuleReadQueries struct {
	mock.Mock
}

func (m *MockCadenceRuleReadQueries) ListCadenceRules(ctx context.Context, db sqlc.DBTX) ([]sqlc.CadenceRules, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.CadenceRules), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCadenceRuleReadStoreAll(t *testing.T) {
	rows := []sqlc.CadenceRules{
		{
			CadenceKey:        "production_order/in_production",
			WorkItemType:      "production_order",
			Status:            "in_production",
			DaysUntilEventMin: pgtype.Int4{Int32: 0, Valid: true},
			FollowUpDays:      5,
			BusinessDaysOnly:  true,
		},
		{
			// inconsistent: pause flag without the sentinel is logged, not dropped
			CadenceKey:     "production_order/on_hold",
			WorkItemType:   "production_order",
			Status:         "on_hold",
			FollowUpDays:   3,
			PausesFollowUp: true,
		},
	}

	t.Run("maps rows and serves repeats from cache", func(t *testing.T) {
		q := new(MockCadenceRuleReadQueries)
		q.On("ListCadenceRules", mock.Anything, mock.Anything).Return(rows, nil).Once()
		store := NewCadenceRuleReadStore(q, nil, time.Minute, discardLogger())

		first, err := store.All(context.Background())
		require.NoError(t, err)
		second, err := store.All(context.Background())
		require.NoError(t, err)

		require.Len(t, first, 2)
		assert.Equal(t, first, second)
		require.NotNil(t, first[0].DaysUntilEventMin)
		assert.Equal(t, 0, *first[0].DaysUntilEventMin)
		assert.Nil(t, first[0].DaysUntilEventMax)
		assert.True(t, first[0].BusinessDaysOnly)
		assert.True(t, first[1].PausesFollowUp)
		q.AssertNumberOfCalls(t, "ListCadenceRules", 1)
	})

	t.Run("invalidate reloads", func(t *testing.T) {
		q := new(MockCadenceRuleReadQueries)
		q.On("ListCadenceRules", mock.Anything, mock.Anything).Return(rows, nil)
		store := NewCadenceRuleReadStore(q, nil, time.Minute, discardLogger())

		_, err := store.All(context.Background())
		require.NoError(t, err)
		store.Invalidate()
		_, err = store.All(context.Background())
		require.NoError(t, err)

		q.AssertNumberOfCalls(t, "ListCadenceRules", 2)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		q := new(MockCadenceRuleReadQueries)
		q.On("ListCadenceRules", mock.Anything, mock.Anything).Return([]sqlc.CadenceRules(nil), assert.AnError).Once()
		q.On("ListCadenceRules", mock.Anything, mock.Anything).Return(rows, nil).Once()
		store := NewCadenceRuleReadStore(q, nil, time.Minute, discardLogger())

		_, err := store.All(context.Background())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))

		got, err := store.All(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
