//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/pkg/clock"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/pkg/mailtmpl"
	"order-followup/internal/usecase/queries"
	queriesmock "order-followup/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 7, 15, 0, 0, 0, time.UTC)

func dueItems(n int) []*queries.DueWorkItemView {
	out := make([]*queries.DueWorkItemView, n)
	for i := range out {
		out[i] = &queries.DueWorkItemView{
			ID:             uuid.New(),
			Type:           "production_order",
			Status:         "in_production",
			NextFollowUpAt: now.Add(-time.Duration(n-i) * time.Hour),
		}
	}
	return out
}

func TestWorkItemQueries_ListDue(t *testing.T) {
	t.Run("first page with a next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWorkItemReadStore(ctrl)
		items := dueItems(3)
		store.EXPECT().ListDue(gomock.Any(), now, int32(3)).Return(items, nil)

		got, next, err := queries.NewWorkItemQueries(store, clock.NewMockClock(now)).ListDue(context.Background(), nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[1].ID, id)
		assert.True(t, items[1].NextFollowUpAt.Equal(at))
	})

	t.Run("following page uses the keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWorkItemReadStore(ctrl)
		afterID := uuid.New()
		afterAt := now.Add(-time.Hour)
		store.EXPECT().ListDueAfter(gomock.Any(), now, gomock.Any(), afterID, int32(queries.DefaultListLimit+1)).
			Return(dueItems(1), nil)

		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(afterAt, afterID)}
		got, next, err := queries.NewWorkItemQueries(store, clock.NewMockClock(now)).ListDue(context.Background(), cursor, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockWorkItemReadStore(ctrl)

		_, _, err := queries.NewWorkItemQueries(store, clock.NewMockClock(now)).
			ListDue(context.Background(), &queries.Cursor{After: "not-a-cursor"}, 10)

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 10, queries.ValidateLimit(10))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}

func TestBatchEmailQueries_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBatchEmailReadStore(ctrl)
	batchID := uuid.New()
	store.EXPECT().ListByBatch(gomock.Any(), batchID).Return(nil, nil)

	got, err := queries.NewBatchEmailQueries(store, nil).Status(context.Background(), batchID)

	require.NoError(t, err)
	assert.Equal(t, batchID, got.BatchID)
	assert.NotNil(t, got.Emails)
	assert.Empty(t, got.Emails)
}

func TestBatchEmailQueries_Preview(t *testing.T) {
	t.Run("renders the requested template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := queriesmock.NewMockTemplateRenderer(ctrl)
		renderer.EXPECT().Render(batchemail.EmailShipped, mailtmpl.Data{FirstName: "Jane"}).
			Return(mailtmpl.Rendered{Subject: "Shipped", HTML: "<p>Hi Jane</p>"}, nil)

		got, err := queries.NewBatchEmailQueries(nil, renderer).Preview(context.Background(), "shipped", "Jane")

		require.NoError(t, err)
		assert.Equal(t, "shipped", got.EmailType)
		assert.Equal(t, "<p>Hi Jane</p>", got.HTML)
	})

	t.Run("unknown type is a validation error", func(t *testing.T) {
		_, err := queries.NewBatchEmailQueries(nil, nil).Preview(context.Background(), "newsletter", "")

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
