package notifications

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v3"

	"github.com/you/ytstudio/domain"
)

// ResendServiceImpl implements domain.NotificationService
type ResendServiceImpl struct {
	client *resend.Client
	from   string
}

// NewResendService creates a new Resend notification service
func NewResendService(apiKey, from string) domain.NotificationService {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}
	return &ResendServiceImpl{
		client: client,
		from:   from,
	}
}

// SendEmail implements domain.NotificationService
func (s *ResendServiceImpl) SendEmail(to, subject, body string) error {
	// If credentials are not configured, log instead of sending
	if s.client == nil || s.from == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s", to, subject, body)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
