package converter

import (
	"order-followup/internal/domain/batchemail"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"
)

func TaskToInsertParams(t *batchemail.Task) sqlc.InsertBatchEmailTaskParams {
	pre := t.Preconditions()
	return sqlc.InsertBatchEmailTaskParams{
		QueueID:             t.QueueID(),
		BatchID:             t.BatchID(),
		WorkItemID:          t.WorkItemID(),
		EmailType:           t.EmailType().String(),
		RecipientEmail:      t.Recipient().Email(),
		RecipientName:       t.Recipient().Name(),
		ScheduledSendAt:     pgconv.TimeToPgtype(t.ScheduledSendAt()),
		ExpectedBatchStatus: pgconv.StringPtrToPgtype(pre.ExpectedBatchStatus),
		ExpectedHasTracking: pgconv.BoolPtrToPgtype(pre.ExpectedHasTracking),
		CreatedAt:           pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

// TaskFromRow trusts stored enum values; the table CHECK constraint guards status.
func TaskFromRow(row sqlc.BatchEmailQueue) *batchemail.Task {
	return batchemail.ReconstructTask(batchemail.TaskSnapshot{
		QueueID:         row.QueueID,
		BatchID:         row.BatchID,
		WorkItemID:      row.WorkItemID,
		EmailType:       batchemail.EmailType(row.EmailType),
		RecipientEmail:  row.RecipientEmail,
		RecipientName:   row.RecipientName,
		ScheduledSendAt: pgconv.TimeFromPgtype(row.ScheduledSendAt),
		Status:          batchemail.Status(row.Status),
		Preconditions: batchemail.Preconditions{
			ExpectedBatchStatus: pgconv.StringPtrFromPgtype(row.ExpectedBatchStatus),
			ExpectedHasTracking: pgconv.BoolPtrFromPgtype(row.ExpectedHasTracking),
		},
		CancelReason: pgconv.StringPtrFromPgtype(row.CancelReason),
		LastError:    pgconv.StringPtrFromPgtype(row.LastError),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	})
}
