package repository

import (
	"context"
	"time"

	"order-followup/internal/domain/channel"
	"order-followup/internal/infra"
	sqlc "order-followup/internal/infra/sqlc/generated"
	"order-followup/internal/pkg/pgconv"
)

type ChannelSubscriptionWriteQueries interface {
	GetChannelSubscription(ctx context.Context, db sqlc.DBTX, channelID string) (sqlc.ChannelSubscriptions, error)
	UpsertChannelSubscriptionRenewal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertChannelSubscriptionRenewalParams) error
	UpsertChannelBackfilledThrough(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertChannelBackfilledThroughParams) error
	InsertChannelEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertChannelEventParams) (int64, error)
}

type ChannelSubscriptionRepository struct {
	queries ChannelSubscriptionWriteQueries
	db      sqlc.DBTX
}

func NewChannelSubscriptionRepository(queries ChannelSubscriptionWriteQueries, db sqlc.DBTX) *ChannelSubscriptionRepository {
	return &ChannelSubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ChannelSubscriptionRepository) Get(ctx context.Context, tx sqlc.DBTX, channelID string) (*channel.Subscription, error) {
	row, err := r.queries.GetChannelSubscription(ctx, tx, channelID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load channel subscription", err)
	}
	return &channel.Subscription{
		ChannelID:             row.ChannelID,
		ResourceID:            row.ResourceID,
		ExpiresAt:             pgconv.TimePtrFromPgtype(row.ExpiresAt),
		LastBackfilledThrough: pgconv.TimePtrFromPgtype(row.LastBackfilledThrough),
	}, nil
}

func (r *ChannelSubscriptionRepository) SaveRenewal(ctx context.Context, tx sqlc.DBTX, channelID string, renewal channel.Renewal) error {
	err := r.queries.UpsertChannelSubscriptionRenewal(ctx, tx, sqlc.UpsertChannelSubscriptionRenewalParams{
		ChannelID:  channelID,
		ResourceID: renewal.ResourceID,
		ExpiresAt:  pgconv.TimeToPgtype(renewal.ExpiresAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save channel renewal", err)
	}
	return nil
}

// SaveBackfilledThrough never moves the watermark backwards.
func (r *ChannelSubscriptionRepository) SaveBackfilledThrough(ctx context.Context, tx sqlc.DBTX, channelID string, through time.Time) error {
	err := r.queries.UpsertChannelBackfilledThrough(ctx, tx, sqlc.UpsertChannelBackfilledThroughParams{
		ChannelID:             channelID,
		LastBackfilledThrough: pgconv.TimeToPgtype(through),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save backfill watermark", err)
	}
	return nil
}

func (r *ChannelSubscriptionRepository) InsertEvent(ctx context.Context, tx sqlc.DBTX, channelID string, ev channel.InboundEvent) (bool, error) {
	n, err := r.queries.InsertChannelEvent(ctx, tx, sqlc.InsertChannelEventParams{
		EventID:    ev.EventID,
		ChannelID:  channelID,
		WorkItemID: pgconv.UUIDPtrToPgtype(ev.WorkItemID),
		Sender:     ev.From,
		Subject:    ev.Subject,
		ReceivedAt: pgconv.TimeToPgtype(ev.ReceivedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record channel event", err)
	}
	return n == 1, nil
}
