package usecase

import (
	"context"
	"sync"
	"time"

	"portfolio-site/internal/domain"
)

// contactFlow is Idle -> Submitting -> {Submitted | Idle with a notice}.
// Submitted is only left through Reset.
type contactFlow struct {
	uc  *contactUsecase
	now func() time.Time

	mu          sync.Mutex
	state       domain.FlowState
	values      domain.ContactSubmission
	fieldErrors map[string]string
	notice      string
	lastSeen    time.Time
	sessionID   string
	// settled is closed when the outstanding dispatch finishes; nil outside Submitting.
	settled chan struct{}
}

func newContactFlow(uc *contactUsecase, now func() time.Time) *contactFlow {
	return &contactFlow{
		uc:       uc,
		now:      now,
		state:    domain.FlowIdle,
		lastSeen: now(),
	}
}

func (f *contactFlow) Submit(ctx context.Context, sub domain.ContactSubmission) domain.SubmitResult {
	f.mu.Lock()
	f.lastSeen = f.now()
	switch f.state {
	case domain.FlowSubmitting:
		f.mu.Unlock()
		f.uc.audit.LogContactInFlightRejected(ctx, f.sessionID)
		return domain.SubmitResult{Outcome: domain.OutcomeRejected, Err: domain.ErrSubmissionInFlight}
	case domain.FlowSubmitted:
		f.mu.Unlock()
		return domain.SubmitResult{Outcome: domain.OutcomeRejected, Err: domain.ErrAlreadySubmitted}
	}

	f.values = sub
	f.notice = ""
	if errs := f.uc.Validate(sub); len(errs) > 0 {
		f.fieldErrors = errs
		f.mu.Unlock()
		f.uc.audit.LogContactValidationFailed(ctx, fieldNames(errs))
		return domain.SubmitResult{Outcome: domain.OutcomeInvalid, FieldErrors: copyErrors(errs)}
	}
	f.fieldErrors = nil
	f.state = domain.FlowSubmitting
	f.settled = make(chan struct{})
	f.mu.Unlock()

	err := f.uc.dispatch(ctx, trimSubmission(sub))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSeen = f.now()
	close(f.settled)
	f.settled = nil
	if err != nil {
		f.state = domain.FlowIdle
		f.notice = domain.ContactFailureNotice
		return domain.SubmitResult{Outcome: domain.OutcomeFailed, Err: err}
	}
	f.state = domain.FlowSubmitted
	f.values = domain.ContactSubmission{}
	return domain.SubmitResult{Outcome: domain.OutcomeSent}
}

// Reset returns a submitted form to a blank Idle state. It does nothing while
// a dispatch is outstanding.
func (f *contactFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == domain.FlowSubmitting {
		return
	}
	f.state = domain.FlowIdle
	f.values = domain.ContactSubmission{}
	f.fieldErrors = nil
	f.notice = ""
	f.lastSeen = f.now()
}

func (f *contactFlow) Snapshot() domain.FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.FlowSnapshot{
		State:       f.state,
		Values:      f.values,
		FieldErrors: copyErrors(f.fieldErrors),
		Notice:      f.notice,
	}
}

func (f *contactFlow) Wait(ctx context.Context) domain.FlowSnapshot {
	f.mu.Lock()
	settled := f.settled
	f.mu.Unlock()

	if settled != nil {
		select {
		case <-settled:
		case <-ctx.Done():
		}
	}
	return f.Snapshot()
}

func (f *contactFlow) expired(now time.Time, ttl time.Duration) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state != domain.FlowSubmitting && now.Sub(f.lastSeen) > ttl
}

func copyErrors(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
