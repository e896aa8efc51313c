package static

import (
	"context"
	"slices"

	"portfolio-site/internal/domain"
)

type projectRepo struct {
	items []domain.Project
	byID  map[string]int
}

func NewProjectRepository(c *Catalog) domain.ProjectRepository {
	r := &projectRepo{items: c.Projects, byID: make(map[string]int, len(c.Projects))}
	for i, p := range c.Projects {
		r.byID[p.ID] = i
	}
	return r
}

func (r *projectRepo) List(ctx context.Context) []domain.Project {
	out := make([]domain.Project, len(r.items))
	for i, p := range r.items {
		out[i] = cloneProject(p)
	}
	return out
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := cloneProject(r.items[i])
	return &p, nil
}

func cloneProject(p domain.Project) domain.Project {
	p.Images = slices.Clone(p.Images)
	p.Tags = slices.Clone(p.Tags)
	p.Features = slices.Clone(p.Features)
	return p
}
