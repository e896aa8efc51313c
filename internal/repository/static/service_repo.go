package static

import (
	"context"
	"slices"

	"portfolio-site/internal/domain"
)

type serviceRepo struct {
	items []domain.Service
	byID  map[string]int
}

func NewServiceRepository(c *Catalog) domain.ServiceRepository {
	r := &serviceRepo{items: c.Services, byID: make(map[string]int, len(c.Services))}
	for i, s := range c.Services {
		r.byID[s.ID] = i
	}
	return r
}

func (r *serviceRepo) List(ctx context.Context) []domain.Service {
	out := make([]domain.Service, len(r.items))
	for i, s := range r.items {
		s.Features = slices.Clone(s.Features)
		out[i] = s
	}
	return out
}

func (r *serviceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s := r.items[i]
	s.Features = slices.Clone(s.Features)
	return &s, nil
}
