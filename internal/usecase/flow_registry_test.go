package usecase

import (
	"context"
	"testing"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/security"
	"portfolio-site/pkg/validation"

	"github.com/stretchr/testify/assert"
)

type stubDispatcher struct{ err error }

func (d stubDispatcher) Send(context.Context, domain.ContactMessage) error { return d.err }

func (d stubDispatcher) IsConfigured() bool { return true }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFlowRegistryExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	uc := &contactUsecase{
		dispatcher: stubDispatcher{},
		validate:   validation.New(),
		audit:      security.NopLogger(),
	}
	reg := newFlowRegistry(uc, 10*time.Minute, clock.now)
	uc.flows = reg

	f := reg.Get("visitor")
	f.Submit(context.Background(), domain.ContactSubmission{Name: "Ada", Email: "bad"})
	assert.Same(t, f, reg.Get("visitor"))

	clock.t = clock.t.Add(11 * time.Minute)
	fresh := reg.Get("visitor")
	assert.NotSame(t, f, fresh)
	assert.True(t, fresh.Snapshot().Values.IsZero())
}

func TestFlowRegistrySweep(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	uc := &contactUsecase{dispatcher: stubDispatcher{}, validate: validation.New(), audit: security.NopLogger()}
	reg := newFlowRegistry(uc, 10*time.Minute, clock.now)

	reg.Get("a")
	reg.Get("b")
	assert.Equal(t, 2, reg.Len())

	clock.t = clock.t.Add(11 * time.Minute)
	reg.Get("c")
	assert.Equal(t, 1, reg.Len())
}

func TestNewFlowRegistryDefaultTTL(t *testing.T) {
	reg := newFlowRegistry(&contactUsecase{}, 0, time.Now)
	assert.Equal(t, 30*time.Minute, reg.ttl)
}
