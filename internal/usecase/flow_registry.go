package usecase

import (
	"sync"
	"time"

	"portfolio-site/internal/domain"
)

// flowRegistry keeps one contact flow per visitor session. Stale idle flows
// are swept on access, never while a dispatch is outstanding.
type flowRegistry struct {
	uc  *contactUsecase
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	flows     map[string]*contactFlow
	lastSweep time.Time
}

func newFlowRegistry(uc *contactUsecase, ttl time.Duration, now func() time.Time) *flowRegistry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &flowRegistry{
		uc:        uc,
		ttl:       ttl,
		now:       now,
		flows:     make(map[string]*contactFlow),
		lastSweep: now(),
	}
}

func (r *flowRegistry) Get(sessionID string) domain.ContactFlow {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) > r.ttl/2 {
		r.sweep(now)
	}

	f, ok := r.flows[sessionID]
	if !ok || f.expired(now, r.ttl) {
		f = newContactFlow(r.uc, r.now)
		f.sessionID = sessionID
		r.flows[sessionID] = f
	}
	return f
}

func (r *flowRegistry) sweep(now time.Time) {
	for id, f := range r.flows {
		if f.expired(now, r.ttl) {
			delete(r.flows, id)
		}
	}
	r.lastSweep = now
}

// Len is used by tests.
func (r *flowRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flows)
}
