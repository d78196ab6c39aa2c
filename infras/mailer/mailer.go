package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"zenstay/config"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v3"
	"github.com/rs/zerolog/log"
)

// Mailer sends transactional mail. When mail is disabled in the
// configuration the send is skipped and logged instead.
type Mailer interface {
	Send(ctx context.Context, toEmail, toName, subject, body string) error
}

type mailjetMailer struct {
	client *mailjet.Client
	config *config.Config
}

func New(cfg *config.Config) Mailer {
	var client *mailjet.Client
	if cfg.Mail.Enable {
		client = mailjet.NewMailjetClient(cfg.Mail.PublicKey, cfg.Mail.PrivateKey)

		log.Info().Str("sender", cfg.Mail.SenderEmail).Msg("Mailjet client initialized")
	} else {
		log.Info().Msg("Mail delivery disabled, messages will be logged only")
	}

	return &mailjetMailer{
		client: client,
		config: cfg,
	}
}

// Send implements Mailer.
func (m *mailjetMailer) Send(_ context.Context, toEmail, toName, subject, body string) error {
	if !m.config.Mail.Enable {
		log.Info().
			Str("to", toEmail).
			Str("subject", subject).
			Msg("Mail delivery disabled, skipping send")

		return nil
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: m.config.Mail.SenderEmail,
					Name:  m.config.Mail.SenderName,
				},
				To: &mailjet.RecipientsV31{
					{
						Email: toEmail,
						Name:  toName,
					},
				},
				Subject:  subject,
				TextPart: body,
			},
		},
	}

	_, err := m.client.SendMailV31(&messages)
	if err != nil {
		log.Error().Err(err).Str("to", toEmail).Str("subject", subject).Msg("Failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", toEmail).Str("subject", subject).Msg("Mail sent")

	return nil
}
