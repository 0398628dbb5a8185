package contracts

import (
	"context"
	"intake-service/internal/pkg/dto/requests"
)

type MailerService interface {
	// SendEmail enqueues the payload for asynchronous delivery.
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	// SendEmailDirect delivers synchronously over SMTP.
	SendEmailDirect(to []string, subject, body string) error
	ValidateEmail(email string) bool
}
