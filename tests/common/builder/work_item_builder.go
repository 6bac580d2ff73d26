//go:build unit || e2e

package builder

import (
	"time"

	"order-followup/internal/domain/workitem"
	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkItemBuilder struct {
	ID             uuid.UUID
	Type           workitem.Type
	Status         string
	EventDate      *time.Time
	LastContactAt  *time.Time
	NextFollowUpAt *time.Time
}

func NewWorkItemBuilder() *WorkItemBuilder {
	next := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return &WorkItemBuilder{
		ID:             uuid.New(),
		Type:           workitem.TypeProductionOrder,
		Status:         "in_production",
		NextFollowUpAt: &next,
	}
}

func (b *WorkItemBuilder) With(mutate func(*WorkItemBuilder)) *WorkItemBuilder {
	mutate(b)
	return b
}

func (b *WorkItemBuilder) BuildDomain() *workitem.WorkItem {
	return workitem.Reconstruct(b.ID, b.Type, b.Status, b.EventDate, b.LastContactAt, b.NextFollowUpAt)
}

func (b *WorkItemBuilder) BuildFollowUpResult(ruleKey string) *commands.FollowUpResult {
	return &commands.FollowUpResult{
		WorkItemID:     b.ID,
		LastContactAt:  b.LastContactAt,
		NextFollowUpAt: b.NextFollowUpAt,
		RuleKey:        ruleKey,
	}
}

func (b *WorkItemBuilder) BuildDueView() *queries.DueWorkItemView {
	view := &queries.DueWorkItemView{
		ID:            b.ID,
		Type:          b.Type.String(),
		Status:        b.Status,
		EventDate:     b.EventDate,
		LastContactAt: b.LastContactAt,
	}
	if b.NextFollowUpAt != nil {
		view.NextFollowUpAt = *b.NextFollowUpAt
	}
	return view
}
