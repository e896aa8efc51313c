package usecase

import (
	"context"
	"strings"

	"portfolio-site/internal/domain"
)

type contentUsecase struct {
	projects domain.ProjectRepository
	services domain.ServiceRepository
	posts    domain.BlogRepository
	profile  domain.ProfileRepository
}

func NewContentUsecase(projects domain.ProjectRepository, services domain.ServiceRepository, posts domain.BlogRepository, profile domain.ProfileRepository) domain.ContentUsecase {
	return &contentUsecase{
		projects: projects,
		services: services,
		posts:    posts,
		profile:  profile,
	}
}

func (u *contentUsecase) FeaturedProjects(ctx context.Context, n int) []domain.Project {
	all := u.projects.List(ctx)
	if n <= 0 {
		return nil
	}
	if n < len(all) {
		return all[:n]
	}
	return all
}

// ProjectCategories is "All" followed by each distinct tag in first-seen order.
func (u *contentUsecase) ProjectCategories(ctx context.Context) []string {
	var tags []string
	for _, p := range u.projects.List(ctx) {
		tags = append(tags, p.Tags...)
	}
	return withAll(tags)
}

func (u *contentUsecase) FilterProjects(ctx context.Context, tag string) []domain.Project {
	all := u.projects.List(ctx)
	if isAll(tag) {
		return all
	}
	var out []domain.Project
	for _, p := range all {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

func (u *contentUsecase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return u.projects.GetByID(ctx, id)
}

func (u *contentUsecase) Services(ctx context.Context) []domain.Service {
	return u.services.List(ctx)
}

func (u *contentUsecase) Posts(ctx context.Context) []domain.BlogPost {
	return u.posts.List(ctx)
}

func (u *contentUsecase) BlogCategories(ctx context.Context) []string {
	var cats []string
	for _, p := range u.posts.List(ctx) {
		cats = append(cats, p.Category)
	}
	return withAll(cats)
}

func (u *contentUsecase) FilterPosts(ctx context.Context, category string) []domain.BlogPost {
	all := u.posts.List(ctx)
	if isAll(category) {
		return all
	}
	var out []domain.BlogPost
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (u *contentUsecase) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	return u.posts.GetByID(ctx, id)
}

// RelatedPosts returns up to n other posts sharing a category or a tag with id.
func (u *contentUsecase) RelatedPosts(ctx context.Context, id string, n int) []domain.BlogPost {
	current, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	var out []domain.BlogPost
	for _, p := range u.posts.List(ctx) {
		if len(out) == n {
			break
		}
		if p.ID != id && current.SharesTopicWith(p) {
			out = append(out, p)
		}
	}
	return out
}

func (u *contentUsecase) Profile(ctx context.Context) domain.Profile {
	return u.profile.Get(ctx)
}

// SearchSkills filters one skill category by a case-insensitive substring.
// An unknown category yields nothing.
func (u *contentUsecase) SearchSkills(ctx context.Context, category, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, c := range u.profile.Get(ctx).SkillCategories {
		if c.Name != category {
			continue
		}
		if q == "" {
			return c.Skills
		}
		var out []string
		for _, s := range c.Skills {
			if strings.Contains(strings.ToLower(s), q) {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func isAll(v string) bool {
	return v == "" || v == domain.AllCategory
}

func withAll(values []string) []string {
	out := []string{domain.AllCategory}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
