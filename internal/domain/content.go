package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// AllCategory is the catch-all filter value on listing pages.
const AllCategory = "All"

type Project struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Thumbnail   string   `yaml:"thumbnail" json:"thumbnail"`
	Images      []string `yaml:"images" json:"images"`
	Role        string   `yaml:"role" json:"role"`
	Year        string   `yaml:"year" json:"year"`
	Client      string   `yaml:"client" json:"client"`
	Tags        []string `yaml:"tags" json:"tags"`
	Objectives  string   `yaml:"objectives" json:"objectives"`
	Outcome     string   `yaml:"outcome" json:"outcome"`
	Features    []string `yaml:"features" json:"features"`
	Link        string   `yaml:"link,omitempty" json:"link,omitempty"`
	PaperLink   string   `yaml:"paper_link,omitempty" json:"paper_link,omitempty"`
	Icon        string   `yaml:"icon" json:"icon"`
}

// HasTag reports whether the project is labelled with tag.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Service struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	Features    []string `yaml:"features" json:"features"`
}

type BlogPost struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Excerpt  string   `yaml:"excerpt" json:"excerpt"`
	Content  string   `yaml:"content" json:"content"`
	Category string   `yaml:"category" json:"category"`
	Author   string   `yaml:"author" json:"author"`
	Date     string   `yaml:"date" json:"date"`
	Image    string   `yaml:"image" json:"image"`
	Tags     []string `yaml:"tags" json:"tags"`
}

// SharesTopicWith is true when both posts have the same category or any common tag.
func (b BlogPost) SharesTopicWith(other BlogPost) bool {
	if b.Category == other.Category {
		return true
	}
	for _, t := range b.Tags {
		for _, o := range other.Tags {
			if t == o {
				return true
			}
		}
	}
	return false
}

// Profile is the site owner's about-page content.
type Profile struct {
	Name            string           `yaml:"name"`
	Headline        string           `yaml:"headline"`
	Summary         string           `yaml:"summary"`
	Location        string           `yaml:"location"`
	Email           string           `yaml:"email"`
	Availability    string           `yaml:"availability"`
	Socials         []SocialLink     `yaml:"socials"`
	SpotlightSkills []SpotlightSkill `yaml:"spotlight_skills"`
	SkillCategories []SkillCategory  `yaml:"skill_categories"`
	Experience      []Experience     `yaml:"experience"`
	Publications    []Publication    `yaml:"publications"`
	Timeline        []TimelineEntry  `yaml:"timeline"`
	Achievements    []Achievement    `yaml:"achievements"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type SpotlightSkill struct {
	Name       string       `yaml:"name"`
	Level      string       `yaml:"level"`
	Score      int          `yaml:"score"`
	ProofLinks []SocialLink `yaml:"proof_links,omitempty"`
}

type SkillCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

type Experience struct {
	Title      string   `yaml:"title"`
	Company    string   `yaml:"company"`
	Period     string   `yaml:"period"`
	Highlights []string `yaml:"highlights"`
}

type Publication struct {
	Title       string `yaml:"title"`
	Venue       string `yaml:"venue"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
}

type TimelineEntry struct {
	Year  string `yaml:"year"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type Achievement struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type ProjectRepository interface {
	List(ctx context.Context) []Project
	GetByID(ctx context.Context, id string) (*Project, error)
}

type ServiceRepository interface {
	List(ctx context.Context) []Service
	GetByID(ctx context.Context, id string) (*Service, error)
}

type BlogRepository interface {
	List(ctx context.Context) []BlogPost
	GetByID(ctx context.Context, id string) (*BlogPost, error)
}

type ProfileRepository interface {
	Get(ctx context.Context) Profile
}

// ContentUsecase serves the read-only listing and detail views.
type ContentUsecase interface {
	FeaturedProjects(ctx context.Context, n int) []Project
	ProjectCategories(ctx context.Context) []string
	FilterProjects(ctx context.Context, tag string) []Project
	GetProject(ctx context.Context, id string) (*Project, error)

	Services(ctx context.Context) []Service

	Posts(ctx context.Context) []BlogPost
	BlogCategories(ctx context.Context) []string
	FilterPosts(ctx context.Context, category string) []BlogPost
	GetPost(ctx context.Context, id string) (*BlogPost, error)
	RelatedPosts(ctx context.Context, id string, n int) []BlogPost

	Profile(ctx context.Context) Profile
	SearchSkills(ctx context.Context, category, query string) []string
}
