package dispatch

import (
	"context"

	"order-followup/internal/domain/batchemail"
	"order-followup/internal/pkg/mailtmpl"

	"github.com/google/uuid"
)

// Message is one rendered email ready for the transport.
type Message struct {
	QueueID   uuid.UUID
	EmailType batchemail.EmailType
	To        string
	ToName    string
	Subject   string
	HTML      string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type Renderer interface {
	Render(emailType batchemail.EmailType, data mailtmpl.Data) (mailtmpl.Rendered, error)
}
