package usecase

import (
	"context"
	"time"

	"portfolio-site/internal/domain"
	redisclient "portfolio-site/pkg/redis"

	"github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	redis      *redis.Client
	dispatcher domain.ContactDispatcher
}

// NewHealthUsecase reports on optional collaborators. Either may be nil.
func NewHealthUsecase(rdb *redis.Client, dispatcher domain.ContactDispatcher) HealthUsecase {
	return &healthUsecase{redis: rdb, dispatcher: dispatcher}
}

// Check never fails the whole report: a missing Redis only degrades rate
// limiting to in-process counters.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	out := map[string]string{
		"status": "ok",
		"redis":  "disabled",
		"email":  "not_configured",
	}
	if u.redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := redisclient.HealthCheck(pingCtx, u.redis); err != nil {
			out["redis"] = "unavailable"
		} else {
			out["redis"] = "ok"
		}
	}
	if u.dispatcher != nil && u.dispatcher.IsConfigured() {
		out["email"] = "configured"
	}
	return out
}
