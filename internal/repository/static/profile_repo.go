package static

import (
	"context"
	"slices"

	"portfolio-site/internal/domain"
)

type profileRepo struct {
	profile domain.Profile
}

func NewProfileRepository(c *Catalog) domain.ProfileRepository {
	return &profileRepo{profile: c.Profile}
}

// Get returns a copy; the nested slices are cloned one level deep.
func (r *profileRepo) Get(ctx context.Context) domain.Profile {
	p := r.profile
	p.Socials = slices.Clone(p.Socials)
	p.SpotlightSkills = slices.Clone(p.SpotlightSkills)
	p.SkillCategories = make([]domain.SkillCategory, len(r.profile.SkillCategories))
	for i, c := range r.profile.SkillCategories {
		c.Skills = slices.Clone(c.Skills)
		p.SkillCategories[i] = c
	}
	p.Experience = slices.Clone(p.Experience)
	p.Publications = slices.Clone(p.Publications)
	p.Timeline = slices.Clone(p.Timeline)
	p.Achievements = slices.Clone(p.Achievements)
	return p
}
