// Package web serves the server-rendered pages of the site.
package web

import (
	"net/http"

	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/routing"
	"portfolio-site/pkg/markdown"

	"github.com/gin-gonic/gin"
)

// SiteInfo is the identity shown in the layout.
type SiteInfo struct {
	Name   string
	URL    string
	Author string
}

type HandlerDeps struct {
	ContentUC domain.ContentUsecase
	ContactUC domain.ContactUsecase
	Renderer  *Renderer
	Markdown  *markdown.Renderer
	Site      SiteInfo
	// Secure marks cookies Secure; set in release behind TLS.
	Secure bool
}

type Handler struct {
	content  domain.ContentUsecase
	contact  domain.ContactUsecase
	renderer *Renderer
	markdown *markdown.Renderer
	site     SiteInfo
	secure   bool
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		content:  deps.ContentUC,
		contact:  deps.ContactUC,
		renderer: deps.Renderer,
		markdown: deps.Markdown,
		site:     deps.Site,
		secure:   deps.Secure,
	}
}

// Register binds every route of the table to its page handler. submitLimit
// wraps the contact POST.
func (h *Handler) Register(r gin.IRouter, submitLimit gin.HandlerFunc) {
	views := map[routing.View]gin.HandlerFunc{
		routing.ViewHome:      h.home,
		routing.ViewAbout:     h.about,
		routing.ViewPortfolio: h.portfolio,
		routing.ViewServices:  h.services,
		routing.ViewBlog:      h.blog,
		routing.ViewBlogPost:  h.blogPost,
		routing.ViewContact:   h.contactPage,
	}
	for _, rt := range routing.Routes() {
		r.GET(rt.Pattern, views[rt.View])
	}

	if submitLimit == nil {
		submitLimit = func(c *gin.Context) { c.Next() }
	}
	r.POST(routing.PathFor(routing.ViewContact, ""), submitLimit, h.submitContact)
	r.POST("/contact/reset", h.resetContact)
	r.POST("/theme/toggle", h.toggleTheme)
	r.POST("/theme", h.setTheme)
}

// Page is the data every template receives.
type Page struct {
	Site      SiteInfo
	Title     string
	View      routing.View
	Nav       []routing.Route
	Theme     ThemeView
	Path      string
	RequestID string
	// Refresh, when set, reloads the page at that local path after a short delay.
	Refresh string
	Data    interface{}
}

func (h *Handler) page(c *gin.Context, view routing.View, title string, data interface{}) Page {
	return Page{
		Site:      h.site,
		Title:     title,
		View:      view,
		Nav:       routing.NavRoutes(),
		Theme:     themeView(ThemeStore(c, h.secure)),
		Path:      c.Request.URL.RequestURI(),
		RequestID: response.RequestID(c),
		Data:      data,
	}
}

func (h *Handler) render(c *gin.Context, status int, view routing.View, title string, data interface{}) {
	h.renderer.Render(c, status, string(view), h.page(c, view, title, data))
}

type errorData struct {
	Status  int
	Message string
}

// ErrorPage renders the HTML error page; it is handed to the error middleware.
func (h *Handler) ErrorPage(c *gin.Context, status int, message string) {
	p := h.page(c, "", http.StatusText(status), errorData{Status: status, Message: message})
	h.renderer.Render(c, status, "error", p)
	if !c.Writer.Written() {
		c.String(status, message)
	}
}

// NotFound renders the 404 page for paths outside the route table.
func (h *Handler) NotFound(c *gin.Context) {
	h.ErrorPage(c, http.StatusNotFound, "The page you are looking for does not exist.")
}
