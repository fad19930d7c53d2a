package contact

import (
	"context"
	"fmt"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/resend/resend-go/v2"
)

type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSubmitter emails submissions through Resend.
type ResendSubmitter struct {
	emails resendEmails
	from   string
	to     string
	log    logger.Logger
}

func NewResendSubmitter(apiKey, from, to string, log logger.Logger) *ResendSubmitter {
	return &ResendSubmitter{
		emails: resend.NewClient(apiKey).Emails,
		from:   from,
		to:     to,
		log:    log.WithComponent("contact"),
	}
}

func (s *ResendSubmitter) Name() string { return "resend" }

func (s *ResendSubmitter) Submit(ctx context.Context, sub Submission) error {
	msg, err := Compose(sub)
	if err != nil {
		return err
	}

	sent, err := s.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return fmt.Errorf("resend: send contact email: %w", err)
	}

	s.log.WithContext(ctx).Info("Contact email sent",
		logger.Transport(s.Name()),
		logger.String("message_id", sent.Id),
	)
	return nil
}
