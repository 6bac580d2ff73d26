package queries

import (
	"context"
	"time"

	"order-followup/internal/pkg/clock"
	"order-followup/internal/pkg/errs"

	"github.com/google/uuid"
)

type WorkItemReadStore interface {
	ListDue(ctx context.Context, now time.Time, limit int32) ([]*DueWorkItemView, error)
	ListDueAfter(ctx context.Context, now time.Time, afterAt time.Time, afterID uuid.UUID, limit int32) ([]*DueWorkItemView, error)
}

type WorkItemQueries interface {
	// ListDue pages through work items due for follow-up, oldest due first.
	ListDue(ctx context.Context, cursor *Cursor, limit int) ([]*DueWorkItemView, *Cursor, error)
}

type workItemQueriesImpl struct {
	store WorkItemReadStore
	clock clock.Clock
}

func NewWorkItemQueries(store WorkItemReadStore, clk clock.Clock) WorkItemQueries {
	return &workItemQueriesImpl{store: store, clock: clk}
}

func (q *workItemQueriesImpl) ListDue(ctx context.Context, cursor *Cursor, limit int) ([]*DueWorkItemView, *Cursor, error) {
	limit = ValidateLimit(limit)
	now := q.clock.Now()
	// One extra row tells us whether another page exists.
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		items []*DueWorkItemView
		err   error
	)
	if cursor != nil && cursor.After != "" {
		afterAt, afterID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrValidation)
		}
		items, err = q.store.ListDueAfter(ctx, now, afterAt, afterID, fetch)
	} else {
		items, err = q.store.ListDue(ctx, now, fetch)
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrTransient)
	}

	if len(items) <= limit {
		return items, nil, nil
	}
	items = items[:limit]
	last := items[len(items)-1]
	return items, &Cursor{After: EncodeAfterCursor(last.NextFollowUpAt, last.ID)}, nil
}
