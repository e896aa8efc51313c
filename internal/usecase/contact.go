package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/security"
	"portfolio-site/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	dispatcher domain.ContactDispatcher
	validate   *validator.Validate
	audit      *security.SecurityLogger
	flows      *flowRegistry
}

// NewContactUsecase creates a new contact usecase. validate must have the
// custom rules from pkg/validation registered.
func NewContactUsecase(dispatcher domain.ContactDispatcher, validate *validator.Validate, audit *security.SecurityLogger, sessionTTL time.Duration) domain.ContactUsecase {
	if audit == nil {
		audit = security.NopLogger()
	}
	uc := &contactUsecase{
		dispatcher: dispatcher,
		validate:   validate,
		audit:      audit,
	}
	uc.flows = newFlowRegistry(uc, sessionTTL, time.Now)
	return uc
}

func (uc *contactUsecase) Flows() domain.ContactFlowRegistry {
	return uc.flows
}

// Validate checks every field independently. Whitespace-only input counts as
// empty, but the message length is measured on the text as typed.
func (uc *contactUsecase) Validate(sub domain.ContactSubmission) map[string]string {
	trimmed := trimSubmission(sub)
	if trimmed.Message != "" {
		trimmed.Message = sub.Message
	}
	if err := uc.validate.Struct(&trimmed); err != nil {
		return validation.FieldErrors(err)
	}
	return nil
}

// SendContactMessage runs one submission through a throwaway flow.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.ContactSubmission) domain.SubmitResult {
	return newContactFlow(uc, time.Now).Submit(ctx, *sub)
}

// dispatch forwards a validated submission. It ignores caller cancellation:
// once sent, the attempt is awaited until the transport settles.
func (uc *contactUsecase) dispatch(ctx context.Context, sub domain.ContactSubmission) error {
	ctx = context.WithoutCancel(ctx)
	if !uc.dispatcher.IsConfigured() {
		uc.audit.LogContactDispatchFailed(ctx, sub.Email, domain.ErrDispatchNotConfigured)
		return domain.ErrDispatchNotConfigured
	}
	msg := domain.ContactMessage{
		FromName:  sub.Name,
		FromEmail: sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
	}
	if err := uc.dispatcher.Send(ctx, msg); err != nil {
		uc.audit.LogContactDispatchFailed(ctx, sub.Email, err)
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	uc.audit.LogContactSubmitted(ctx, sub.Email)
	return nil
}

func trimSubmission(sub domain.ContactSubmission) domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Subject: strings.TrimSpace(sub.Subject),
		Message: strings.TrimSpace(sub.Message),
	}
}

func fieldNames(errs map[string]string) []string {
	names := make([]string, 0, len(errs))
	for k := range errs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
