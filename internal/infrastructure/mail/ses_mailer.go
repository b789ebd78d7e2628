package mail

import (
	"context"
	"log"

	"zoracom_vms/internal/infrastructure/database"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESMailer sends workflow notifications through AWS SES v2.
//
// With mockMode (MAIL_MOCK=true) the mailer only logs, which keeps
// local runs working without a verified SES identity.
type SESMailer struct {
	client   *sesv2.Client
	from     string
	mockMode bool
}

var _ interfaces.IMailer = (*SESMailer)(nil)

func NewSESMailer(ctx context.Context, from string, mockMode bool) (*SESMailer, error) {
	if mockMode {
		log.Printf("[mail][gateway] mock mode enabled")
		return &SESMailer{from: from, mockMode: true}, nil
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: sesv2.NewFromConfig(cfg), from: from}, nil
}

func (m *SESMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.mockMode {
		log.Printf("[mail][gateway] mock send to=%s subject=%q body_len=%d", to, subject, len(htmlBody))
		return nil
	}

	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return err
	}
	log.Printf("[mail][gateway] sent to=%s subject=%q", to, subject)
	return nil
}
