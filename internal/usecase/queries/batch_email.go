package queries

import (
	"context"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/pkg/mailtmpl"

	"github.com/google/uuid"
)

type BatchEmailReadStore interface {
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*BatchEmailView, error)
}

type TemplateRenderer interface {
	Render(emailType batchemail.EmailType, data mailtmpl.Data) (mailtmpl.Rendered, error)
}

type BatchEmailQueries interface {
	// Status never changes state; an unknown batch yields an empty list.
	Status(ctx context.Context, batchID uuid.UUID) (*BatchStatusView, error)
	Preview(ctx context.Context, emailType, firstName string) (*PreviewView, error)
}

type batchEmailQueriesImpl struct {
	store    BatchEmailReadStore
	renderer TemplateRenderer
}

func NewBatchEmailQueries(store BatchEmailReadStore, renderer TemplateRenderer) BatchEmailQueries {
	return &batchEmailQueriesImpl{store: store, renderer: renderer}
}

func (q *batchEmailQueriesImpl) Status(ctx context.Context, batchID uuid.UUID) (*BatchStatusView, error) {
	emails, err := q.store.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTransient)
	}
	if emails == nil {
		emails = []*BatchEmailView{}
	}
	return &BatchStatusView{BatchID: batchID, Emails: emails}, nil
}

func (q *batchEmailQueriesImpl) Preview(_ context.Context, emailType, firstName string) (*PreviewView, error) {
	et, err := batchemail.ParseEmailType(emailType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	out, err := q.renderer.Render(et, mailtmpl.Data{FirstName: firstName})
	if err != nil {
		return nil, err
	}
	return &PreviewView{EmailType: et.String(), Subject: out.Subject, HTML: out.HTML}, nil
}
