package static

import (
	"context"
	"slices"

	"portfolio-site/internal/domain"
)

type blogRepo struct {
	items []domain.BlogPost
	byID  map[string]int
}

func NewBlogRepository(c *Catalog) domain.BlogRepository {
	r := &blogRepo{items: c.Posts, byID: make(map[string]int, len(c.Posts))}
	for i, b := range c.Posts {
		r.byID[b.ID] = i
	}
	return r
}

func (r *blogRepo) List(ctx context.Context) []domain.BlogPost {
	out := make([]domain.BlogPost, len(r.items))
	for i, b := range r.items {
		b.Tags = slices.Clone(b.Tags)
		out[i] = b
	}
	return out
}

func (r *blogRepo) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b := r.items[i]
	b.Tags = slices.Clone(b.Tags)
	return &b, nil
}
