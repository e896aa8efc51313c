package usecase

import (
	"context"
	"errors"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/emailjs"
)

type emailjsDispatcher struct {
	client *emailjs.Client
}

// NewEmailJSDispatcher adapts the EmailJS client to domain.ContactDispatcher.
func NewEmailJSDispatcher(client *emailjs.Client) domain.ContactDispatcher {
	return &emailjsDispatcher{client: client}
}

func (d *emailjsDispatcher) Send(ctx context.Context, msg domain.ContactMessage) error {
	err := d.client.Send(ctx, emailjs.Message{
		FromName:  msg.FromName,
		FromEmail: msg.FromEmail,
		Subject:   msg.Subject,
		Message:   msg.Message,
	})
	if errors.Is(err, emailjs.ErrNotConfigured) {
		return domain.ErrDispatchNotConfigured
	}
	return err
}

func (d *emailjsDispatcher) IsConfigured() bool {
	return d.client.IsConfigured()
}
