package contact

import (
	"context"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
)

// Submitter delivers a contact submission somewhere a person will read it.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
	Name() string
}

// LogSubmitter keeps submissions in the log only. The handler already
// records every submission, so there is nothing further to deliver.
type LogSubmitter struct {
	log logger.Logger
}

func NewLogSubmitter(log logger.Logger) *LogSubmitter {
	return &LogSubmitter{log: log.WithComponent("contact")}
}

func (s *LogSubmitter) Name() string { return "log" }

func (s *LogSubmitter) Submit(ctx context.Context, sub Submission) error {
	s.log.WithContext(ctx).Debug("Contact submission kept in log only",
		logger.Transport(s.Name()),
		logger.String("service_type", sub.ServiceType),
	)
	return nil
}

// LogFields are the structured fields a submission is recorded with.
func (sub Submission) LogFields() []logger.Field {
	return []logger.Field{
		logger.String("name", sub.Name),
		logger.Email(sub.Email),
		logger.String("phone", sub.Phone),
		logger.String("company", sub.Company),
		logger.String("service_type", sub.ServiceType),
		logger.Int("message_length", len(sub.Message)),
		logger.RemoteIP(sub.RemoteIP),
	}
}
