package shared

import (
	"context"
	"time"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/domain/cadence"
	"order-followup/internal/domain/channel"
	"order-followup/internal/domain/workitem"
	sqlc "order-followup/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	WorkItems() WorkItemRepository
	BatchEmails() BatchEmailRepository
	ChannelSubscriptions() ChannelSubscriptionRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	// CadenceRules may be served from a cache; rule edits are rare.
	CadenceRules(ctx context.Context) ([]cadence.Rule, error)
	OrderStateByBatchID(ctx context.Context, batchID uuid.UUID) (*batchemail.OrderState, error)
}

type WorkItemRepository interface {
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*workitem.WorkItem, error)
	UpdateFollowUp(ctx context.Context, tx sqlc.DBTX, item *workitem.WorkItem) error
	RecordInboundContact(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
}

type BatchEmailRepository interface {
	// Enqueue returns the stored task and whether it was newly created.
	Enqueue(ctx context.Context, tx sqlc.DBTX, task *batchemail.Task) (*batchemail.Task, bool, error)
	Cancel(ctx context.Context, tx sqlc.DBTX, queueID uuid.UUID, reason *string, now time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32, workerID string) ([]*batchemail.Task, error)
	// Transition is a compare-and-swap on status; false means another actor moved the task first.
	Transition(ctx context.Context, tx sqlc.DBTX, queueID uuid.UUID, from, to batchemail.Status, lastError *string, now time.Time) (bool, error)
	ReapExpired(ctx context.Context, tx sqlc.DBTX, claimedBefore time.Time, reason string, now time.Time) ([]uuid.UUID, error)
}

type ChannelSubscriptionRepository interface {
	// Get returns nil without error when the channel has never been subscribed.
	Get(ctx context.Context, tx sqlc.DBTX, channelID string) (*channel.Subscription, error)
	SaveRenewal(ctx context.Context, tx sqlc.DBTX, channelID string, renewal channel.Renewal) error
	SaveBackfilledThrough(ctx context.Context, tx sqlc.DBTX, channelID string, through time.Time) error
	// InsertEvent reports false when the event id was already recorded.
	InsertEvent(ctx context.Context, tx sqlc.DBTX, channelID string, ev channel.InboundEvent) (bool, error)
}
