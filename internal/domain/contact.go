package domain

import (
	"context"
	"errors"
)

var (
	// ErrSubmissionInFlight is returned when a submit arrives while a dispatch is outstanding.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	// ErrAlreadySubmitted is returned when a submitted flow has not been reset yet.
	ErrAlreadySubmitted = errors.New("message already sent, reset the form to send another")
	// ErrDispatchNotConfigured means the dispatch ids or key are missing.
	ErrDispatchNotConfigured = errors.New("email service is not configured")
)

// ContactFailureNotice is shown to the visitor whenever dispatch does not succeed.
const ContactFailureNotice = "Failed to send message. Please try again later."

// ContactSubmission represents a contact form submission.
// It only lives for the duration of one submission attempt.
type ContactSubmission struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,contact_email"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required,min=10"`
}

// IsZero reports whether every field is blank.
func (s ContactSubmission) IsZero() bool {
	return s == ContactSubmission{}
}

// FlowState is the visible state of a contact form.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowSubmitting FlowState = "submitting"
	FlowSubmitted  FlowState = "submitted"
)

// Outcome is the binary result of one submit call.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeFailed  Outcome = "failed"
	OutcomeInvalid Outcome = "invalid"
	// OutcomeRejected means the attempt never started (in flight or already submitted).
	OutcomeRejected Outcome = "rejected"
)

// SubmitResult describes what happened to a single submit call.
type SubmitResult struct {
	Outcome     Outcome
	FieldErrors map[string]string
	Err         error
}

// FlowSnapshot is a read-only copy of a flow, used for rendering.
type FlowSnapshot struct {
	State       FlowState
	Values      ContactSubmission
	FieldErrors map[string]string
	Notice      string
}

// ContactMessage is what gets handed to the dispatch endpoint.
type ContactMessage struct {
	FromName  string
	FromEmail string
	Subject   string
	Message   string
}

// ContactDispatcher forwards a validated message to the external email service.
type ContactDispatcher interface {
	Send(ctx context.Context, msg ContactMessage) error
	IsConfigured() bool
}

// ContactUsecase validates and dispatches contact form submissions.
type ContactUsecase interface {
	// Validate checks every field and returns field -> message for each failure.
	Validate(sub ContactSubmission) map[string]string
	// SendContactMessage validates and dispatches one submission without flow state.
	SendContactMessage(ctx context.Context, sub *ContactSubmission) SubmitResult
	// Flows returns the per-visitor flow registry.
	Flows() ContactFlowRegistry
}

// ContactFlow is one visitor's form state machine.
type ContactFlow interface {
	Submit(ctx context.Context, sub ContactSubmission) SubmitResult
	Reset()
	Snapshot() FlowSnapshot
	// Wait blocks until an outstanding dispatch settles or ctx is done, then
	// returns the snapshot at that point.
	Wait(ctx context.Context) FlowSnapshot
}

// ContactFlowRegistry keeps one flow per visitor session.
type ContactFlowRegistry interface {
	Get(sessionID string) ContactFlow
}
