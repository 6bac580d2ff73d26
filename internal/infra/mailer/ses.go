package mailer

import (
	"context"

	"order-followup/internal/pkg/config"
	"order-followup/internal/pkg/errs"
	"order-followup/internal/usecase/dispatch"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const charsetUTF8 = "UTF-8"

type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESMailer struct {
	client SESAPI
	from   string
}

func NewSESMailer(client SESAPI, from string) *SESMailer {
	return &SESMailer{client: client, from: from}
}

// NewSESMailerFromConfig loads the default AWS credential chain. SES_ENDPOINT points at a local emulator.
func NewSESMailerFromConfig(ctx context.Context, cfg config.MailConfig) (*SESMailer, error) {
	if cfg.From == "" {
		return nil, errs.New("MAIL_FROM is required for the ses driver")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}
	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.SESEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.SESEndpoint)
		}
	})
	return NewSESMailer(client, cfg.From), nil
}

func (m *SESMailer) Send(ctx context.Context, msg dispatch.Message) error {
	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{formatAddress(msg.To, msg.ToName)},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charsetUTF8)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String(charsetUTF8)},
				},
			},
		},
	})
	if err != nil {
		return errs.Wrap(err, "ses send email")
	}
	return nil
}
