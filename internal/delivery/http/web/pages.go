package web

import (
	"errors"
	"html/template"
	"net/http"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/routing"
	"portfolio-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	featuredProjectCount = 3
	relatedPostCount     = 3
	skillPreviewCount    = 12
)

type homeData struct {
	Profile  domain.Profile
	Projects []domain.Project
	Services []domain.Service
}

func (h *Handler) home(c *gin.Context) {
	ctx := c.Request.Context()
	h.render(c, http.StatusOK, routing.ViewHome, "Home", homeData{
		Profile:  h.content.Profile(ctx),
		Projects: h.content.FeaturedProjects(ctx, featuredProjectCount),
		Services: h.content.Services(ctx),
	})
}

type skillExplorer struct {
	Categories []string
	Active     string
	Query      string
	Skills     []string
	Total      int
	ShowAll    bool
	HasMore    bool
}

type aboutData struct {
	Profile domain.Profile
	Skills  skillExplorer
}

func (h *Handler) about(c *gin.Context) {
	ctx := c.Request.Context()
	profile := h.content.Profile(ctx)

	ex := skillExplorer{
		Query:   c.Query("skill"),
		ShowAll: c.Query("all") == "1",
	}
	for _, cat := range profile.SkillCategories {
		ex.Categories = append(ex.Categories, cat.Name)
	}
	if len(ex.Categories) > 0 {
		ex.Active = ex.Categories[0]
	}
	if want := c.Query("category"); want != "" {
		for _, name := range ex.Categories {
			if name == want {
				ex.Active = want
			}
		}
	}

	ex.Skills = h.content.SearchSkills(ctx, ex.Active, ex.Query)
	ex.Total = len(ex.Skills)
	if !ex.ShowAll && ex.Total > skillPreviewCount {
		ex.Skills = ex.Skills[:skillPreviewCount]
		ex.HasMore = true
	}

	h.render(c, http.StatusOK, routing.ViewAbout, "About", aboutData{Profile: profile, Skills: ex})
}

type portfolioData struct {
	Categories []string
	Active     string
	Projects   []domain.Project
	Selected   *domain.Project
}

func (h *Handler) portfolio(c *gin.Context) {
	ctx := c.Request.Context()
	data := portfolioData{
		Categories: h.content.ProjectCategories(ctx),
		Active:     activeFilter(c.Query("tag")),
	}
	data.Projects = h.content.FilterProjects(ctx, data.Active)
	if id := c.Query("project"); id != "" {
		// Unknown ids just leave the panel closed.
		if p, err := h.content.GetProject(ctx, id); err == nil {
			data.Selected = p
		}
	}
	h.render(c, http.StatusOK, routing.ViewPortfolio, "Portfolio", data)
}

func (h *Handler) services(c *gin.Context) {
	h.render(c, http.StatusOK, routing.ViewServices, "Services", h.content.Services(c.Request.Context()))
}

type blogData struct {
	Categories []string
	Active     string
	Posts      []domain.BlogPost
}

func (h *Handler) blog(c *gin.Context) {
	ctx := c.Request.Context()
	data := blogData{
		Categories: h.content.BlogCategories(ctx),
		Active:     activeFilter(c.Query("category")),
	}
	data.Posts = h.content.FilterPosts(ctx, data.Active)
	h.render(c, http.StatusOK, routing.ViewBlog, "Blog", data)
}

type blogPostData struct {
	Post    *domain.BlogPost
	Body    template.HTML
	Related []domain.BlogPost
}

// blogPost redirects unknown ids to the listing instead of showing an error.
func (h *Handler) blogPost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	post, err := h.content.GetPost(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		c.Redirect(http.StatusFound, routing.BlogListingPath)
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}

	body, err := h.markdown.Render(post.Content)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	h.render(c, http.StatusOK, routing.ViewBlogPost, post.Title, blogPostData{
		Post:    post,
		Body:    body,
		Related: h.content.RelatedPosts(ctx, id, relatedPostCount),
	})
}

func activeFilter(v string) string {
	if v == "" {
		return domain.AllCategory
	}
	return v
}
