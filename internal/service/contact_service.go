package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/person-api/internal/domain"
)

// ContactService accepts contact form submissions.
type ContactService interface {
	// Submit records msg and echoes the submitting client's user agent.
	Submit(ctx context.Context, msg domain.ContactMessage) domain.Optional[string]
}

type contactService struct {
	logger *slog.Logger
}

// NewContactService creates a ContactService that records submissions in the log.
func NewContactService(logger *slog.Logger) ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactService{logger: logger.With("component", "contact_service")}
}

func (s *contactService) Submit(ctx context.Context, msg domain.ContactMessage) domain.Optional[string] {
	s.logger.InfoContext(ctx, "contact message received",
		"message_length", len(msg.Message),
		"device", DescribeUserAgent(msg.UserAgent.OrElse("")),
		"has_ads_cookie", msg.Ads.IsPresent())
	return msg.UserAgent
}
