package converter

import (
	"order-followup/internal/domain/workitem"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"
)

func WorkItemFromRow(row sqlc.GetWorkItemForUpdateRow) (*workitem.WorkItem, error) {
	itemType, err := workitem.ParseType(row.ItemType)
	if err != nil {
		return nil, err
	}
	return workitem.Reconstruct(
		row.ID,
		itemType,
		row.Status,
		pgconv.DatePtrFromPgtype(row.EventDate),
		pgconv.TimePtrFromPgtype(row.LastContactAt),
		pgconv.TimePtrFromPgtype(row.NextFollowUpAt),
	), nil
}

func WorkItemToFollowUpParams(w *workitem.WorkItem) sqlc.UpdateWorkItemFollowUpParams {
	return sqlc.UpdateWorkItemFollowUpParams{
		LastContactAt:  pgconv.TimePtrToPgtype(w.LastContactAt()),
		NextFollowUpAt: pgconv.TimePtrToPgtype(w.NextFollowUpAt()),
		ID:             w.ID(),
	}
}
