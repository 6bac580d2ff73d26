package response

import (
	"time"

	"order-followup/internal/usecase/commands"
	"order-followup/internal/usecase/queries"
)

type FollowUpResponse struct {
	WorkItemID     string     `json:"work_item_id"`
	NextFollowUpAt *time.Time `json:"next_follow_up_at"`
	LastContactAt  *time.Time `json:"last_contact_at"`
	Paused         bool       `json:"paused"`
	RuleKey        string     `json:"rule_key,omitempty"`
}

func FromFollowUpResult(r *commands.FollowUpResult) *FollowUpResponse {
	return &FollowUpResponse{
		WorkItemID:     r.WorkItemID.String(),
		NextFollowUpAt: r.NextFollowUpAt,
		LastContactAt:  r.LastContactAt,
		Paused:         r.Paused,
		RuleKey:        r.RuleKey,
	}
}

type SnoozeResponse struct {
	WorkItemID   string    `json:"work_item_id"`
	SnoozedUntil time.Time `json:"snoozed_until"`
	Days         int       `json:"days"`
}

func FromSnoozeResult(r *commands.SnoozeResult) *SnoozeResponse {
	return &SnoozeResponse{
		WorkItemID:   r.WorkItemID.String(),
		SnoozedUntil: r.SnoozedUntil,
		Days:         r.Days,
	}
}

type DueWorkItemListResponse struct {
	Items      []*queries.DueWorkItemView `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func FromDueWorkItems(items []*queries.DueWorkItemView, next *queries.Cursor) *DueWorkItemListResponse {
	if items == nil {
		items = []*queries.DueWorkItemView{}
	}
	resp := &DueWorkItemListResponse{Items: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
