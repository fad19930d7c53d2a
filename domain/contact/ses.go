package contact

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesAPI interface {
	SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

// SESSubmitter emails submissions through Amazon SES.
type SESSubmitter struct {
	client sesAPI
	from   string
	to     string
	log    logger.Logger
}

// NewSESSubmitter loads the default AWS credential chain for region.
func NewSESSubmitter(ctx context.Context, region, from, to string, log logger.Logger) (*SESSubmitter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("ses: load aws config: %w", err)
	}
	return &SESSubmitter{
		client: ses.NewFromConfig(cfg),
		from:   from,
		to:     to,
		log:    log.WithComponent("contact"),
	}, nil
}

func (s *SESSubmitter) Name() string { return "ses" }

func (s *SESSubmitter) Submit(ctx context.Context, sub Submission) error {
	msg, err := Compose(sub)
	if err != nil {
		return err
	}

	raw, err := buildRawMessage(s.from, s.to, msg)
	if err != nil {
		return err
	}

	out, err := s.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		RawMessage: &types.RawMessage{Data: raw},
	})
	if err != nil {
		return fmt.Errorf("ses: send contact email: %w", err)
	}

	s.log.WithContext(ctx).Info("Contact email sent",
		logger.Transport(s.Name()),
		logger.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}

// buildRawMessage writes a multipart/alternative MIME message with text and
// HTML parts, both base64 encoded.
func buildRawMessage(from, to string, msg Message) ([]byte, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", msg.Text},
		{"text/html; charset=UTF-8", msg.HTML},
	}
	for _, p := range parts {
		headers := textproto.MIMEHeader{}
		headers.Set("Content-Type", p.contentType)
		headers.Set("Content-Transfer-Encoding", "base64")
		part, err := writer.CreatePart(headers)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write([]byte(wrapBase64(p.content))); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var raw bytes.Buffer
	fmt.Fprintf(&raw, "From: %s\r\n", from)
	fmt.Fprintf(&raw, "To: %s\r\n", to)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&raw, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&raw, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", msg.Subject))
	raw.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&raw, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", writer.Boundary())
	raw.Write(body.Bytes())
	return raw.Bytes(), nil
}

// wrapBase64 encodes s in 76-column lines.
func wrapBase64(s string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(s))
	var b bytes.Buffer
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	return b.String()
}
