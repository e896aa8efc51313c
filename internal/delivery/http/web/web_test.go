package web_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/delivery/http/web"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/repository/static"
	"portfolio-site/internal/usecase"
	"portfolio-site/pkg/markdown"
	"portfolio-site/pkg/security"
	"portfolio-site/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

// fakeDispatcher records sends; gate, when set, blocks each Send until closed.
type fakeDispatcher struct {
	mu      sync.Mutex
	sent    []domain.ContactMessage
	err     error
	gate    chan struct{}
	started chan struct{}
}

func (d *fakeDispatcher) Send(ctx context.Context, msg domain.ContactMessage) error {
	if d.started != nil {
		d.started <- struct{}{}
	}
	if d.gate != nil {
		<-d.gate
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, msg)
	return d.err
}

func (d *fakeDispatcher) IsConfigured() bool { return true }

func (d *fakeDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sent)
}

func testCatalog() *static.Catalog {
	var many []string
	for i := 1; i <= 15; i++ {
		many = append(many, fmt.Sprintf("Skill %02d", i))
	}
	return &static.Catalog{
		Projects: []domain.Project{
			{ID: "resume-agent", Title: "AI Resume Agent", Description: "Parses resumes.", Tags: []string{"Python", "OpenAI"}, Objectives: "Automate screening"},
			{ID: "inventory", Title: "Inventory System", Tags: []string{"C#"}},
		},
		Services: []domain.Service{{ID: "software-development", Title: "Software Development", Features: []string{"APIs"}}},
		Posts: []domain.BlogPost{
			{ID: "1", Title: "Web Trends", Category: "Web", Content: "## Dark mode\n\nEverywhere.", Tags: []string{"css"}},
			{ID: "2", Title: "Performance", Category: "Web", Content: "Fast."},
			{ID: "3", Title: "Branding", Category: "Brand", Content: "<script>alert(1)</script>Brand."},
		},
		Profile: domain.Profile{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Location: "Chennai",
			SkillCategories: []domain.SkillCategory{
				{Name: "Languages", Skills: many},
				{Name: "Tools", Skills: []string{"Git", "Docker"}},
			},
		},
	}
}

type testSite struct {
	engine     *gin.Engine
	dispatcher *fakeDispatcher
}

func newTestSite(t *testing.T, d *fakeDispatcher) *testSite {
	t.Helper()
	return newAuditedTestSite(t, d, security.NopLogger())
}

func newAuditedTestSite(t *testing.T, d *fakeDispatcher, audit *security.SecurityLogger) *testSite {
	t.Helper()
	c := testCatalog()
	content := usecase.NewContentUsecase(
		static.NewProjectRepository(c),
		static.NewServiceRepository(c),
		static.NewBlogRepository(c),
		static.NewProfileRepository(c),
	)
	contact := usecase.NewContactUsecase(d, validation.New(), audit, time.Hour)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	h := web.NewHandler(web.HandlerDeps{
		ContentUC: content,
		ContactUC: contact,
		Renderer:  renderer,
		Markdown:  markdown.NewRenderer(),
		Site:      web.SiteInfo{Name: "Jane Doe", Author: "Jane Doe"},
	})

	r := gin.New()
	r.Use(middleware.ErrorHandler(h.ErrorPage))
	h.Register(r, nil)
	r.NoRoute(h.NotFound)
	return &testSite{engine: r, dispatcher: d}
}

func (s *testSite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testSite) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return s.do(req)
}

func (s *testSite) post(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return s.do(req)
}

func cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

var adaForm = url.Values{
	"name":    {"Ada"},
	"email":   {"ada@example.com"},
	"subject": {"Hi"},
	"message": {"Just saying hello!"},
}

func TestPagesRender(t *testing.T) {
	site := newTestSite(t, &fakeDispatcher{})

	for _, path := range []string{"/", "/about", "/portfolio", "/services", "/blog", "/blog/1", "/contact"} {
		t.Run(path, func(t *testing.T) {
			w := site.get(path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `data-theme-mode="system"`)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		})
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	site := newTestSite(t, &fakeDispatcher{})

	w := site.get("/does/not/exist")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}

func TestBlogPost(t *testing.T) {
	site := newTestSite(t, &fakeDispatcher{})

	t.Run("Should redirect unknown ids to the listing", func(t *testing.T) {
		w := site.get("/blog/does-not-exist")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/blog", w.Header().Get("Location"))
	})

	t.Run("Should render markdown and related posts", func(t *testing.T) {
		body := site.get("/blog/1").Body.String()
		assert.Contains(t, body, `<h2 id="dark-mode">Dark mode</h2>`)
		assert.Contains(t, body, "Related Posts")
		assert.Contains(t, body, `href="/blog/2"`)
	})

	t.Run("Should sanitise post bodies", func(t *testing.T) {
		body := site.get("/blog/3").Body.String()
		assert.NotContains(t, body, "<script>alert(1)</script>")
	})
}

func TestBlogCategoryFilter(t *testing.T) {
	site := newTestSite(t, &fakeDispatcher{})

	body := site.get("/blog?category=Brand").Body.String()
	assert.Contains(t, body, "Branding")
	assert.NotContains(t, body, "Performance")
}

func TestPortfolio(t *testing.T) {
	site := newTestSite(t, &fakeDispatcher{})

	t.Run("Should filter by tag", func(t *testing.T) {
		body := site.get("/portfolio?tag=C%23").Body.String()
		assert.Contains(t, body, "Inventory System")
		assert.NotContains(t, body, "AI Resume Agent")
	})

	t.Run("Should open the detail panel", func(t *testing.T) {
		body := site.get("/portfolio?project=resume-agent").Body.String()
		assert.Contains(t, body, `id="project-resume-agent"`)
		assert.Contains(t, body, "Automate screening")
	})

	t.Run("Should ignore unknown projects", func(t *testing.T) {
		w := site.get("/portfolio?project=nope")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "project-detail")
	})
}

func TestSkillExplorer(t *testing.T) {
	site := newTestSite(t, &fakeDispatcher{})

	t.Run("Should cap the first category at twelve", func(t *testing.T) {
		body := site.get("/about").Body.String()
		assert.Contains(t, body, "Skill 12")
		assert.NotContains(t, body, "Skill 13")
		assert.Contains(t, body, "Show all 15")
	})

	t.Run("Should show everything with all=1", func(t *testing.T) {
		body := site.get("/about?category=Languages&all=1").Body.String()
		assert.Contains(t, body, "Skill 15")
	})

	t.Run("Should search within a category", func(t *testing.T) {
		body := site.get("/about?category=Tools&skill=dock").Body.String()
		assert.Contains(t, body, "<li>Docker</li>")
		assert.NotContains(t, body, "<li>Git</li>")
	})
}

func TestThemeToggle(t *testing.T) {
	site := newTestSite(t, &fakeDispatcher{})

	t.Run("Should cycle and redirect back", func(t *testing.T) {
		w := site.post("/theme/toggle", url.Values{"return_to": {"/about"}}, &http.Cookie{Name: web.ThemeCookie, Value: "light"})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/about", w.Header().Get("Location"))

		c := cookie(w, web.ThemeCookie)
		require.NotNil(t, c)
		assert.Equal(t, "dark", c.Value)
		assert.Equal(t, "dark", w.Header().Get(web.ThemeHeader))
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("Should persist across page loads", func(t *testing.T) {
		mode := "system"
		var seen []string
		for i := 0; i < 4; i++ {
			w := site.post("/theme/toggle", nil, &http.Cookie{Name: web.ThemeCookie, Value: mode})
			mode = cookie(w, web.ThemeCookie).Value
			seen = append(seen, mode)
		}
		assert.Equal(t, []string{"light", "dark", "system", "light"}, seen)

		body := site.get("/", &http.Cookie{Name: web.ThemeCookie, Value: mode}).Body.String()
		assert.Contains(t, body, `data-theme="light" data-theme-mode="light"`)
	})

	t.Run("Should refuse off-site return paths", func(t *testing.T) {
		for _, target := range []string{"//evil.example", "/\t/evil.example", "/\n/evil.example", "https://evil.example"} {
			w := site.post("/theme/toggle", url.Values{"return_to": {target}})
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"), "%q", target)
		}
		w := site.post("/theme", url.Values{"mode": {"dark"}, "return_to": {"/\t/evil.example"}})
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("Should not echo the mode on plain page loads", func(t *testing.T) {
		w := site.get("/", &http.Cookie{Name: web.ThemeCookie, Value: "dark"})
		assert.Empty(t, w.Header().Get(web.ThemeHeader))
	})

	t.Run("Should set an explicit mode", func(t *testing.T) {
		w := site.post("/theme", url.Values{"mode": {"dark"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "dark", cookie(w, web.ThemeCookie).Value)
	})

	t.Run("Should reject an unknown mode", func(t *testing.T) {
		w := site.post("/theme", url.Values{"mode": {"sepia"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSystemThemeFollowsClientHint(t *testing.T) {
	site := newTestSite(t, &fakeDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.ColorSchemeHint, "dark")
	body := site.do(req).Body.String()
	assert.Contains(t, body, `data-theme="dark" data-theme-mode="system"`)

	body = site.get("/").Body.String()
	assert.Contains(t, body, `data-theme="light" data-theme-mode="system"`)
}

// session opens the contact page and returns the issued session cookie.
func session(t *testing.T, site *testSite) *http.Cookie {
	t.Helper()
	w := site.get("/contact")
	require.Equal(t, http.StatusOK, w.Code)
	c := cookie(w, web.SessionCookie)
	require.NotNil(t, c)
	return c
}

func TestContactInvalidSubmission(t *testing.T) {
	d := &fakeDispatcher{}
	site := newTestSite(t, d)
	sess := session(t, site)

	w := site.post("/contact", url.Values{
		"name":    {""},
		"email":   {"bad"},
		"subject": {""},
		"message": {"short"},
	}, sess)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Name is required")
	assert.Contains(t, body, "Invalid email address")
	assert.Contains(t, body, "Subject is required")
	assert.Contains(t, body, "Message must be at least 10 characters")
	assert.Contains(t, body, `value="bad"`)
	assert.Zero(t, d.count())
}

func TestContactSuccessAndReset(t *testing.T) {
	d := &fakeDispatcher{}
	site := newTestSite(t, d)
	sess := session(t, site)

	w := site.post("/contact", adaForm, sess)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message Sent!")
	assert.Contains(t, w.Body.String(), "Send Another Message")
	require.Equal(t, 1, d.count())
	assert.Equal(t, domain.ContactMessage{FromName: "Ada", FromEmail: "ada@example.com", Subject: "Hi", Message: "Just saying hello!"}, d.sent[0])

	again := site.post("/contact", adaForm, sess)
	assert.Equal(t, http.StatusConflict, again.Code)
	assert.Equal(t, 1, d.count())

	reset := site.post("/contact/reset", nil, sess)
	assert.Equal(t, http.StatusSeeOther, reset.Code)
	assert.Equal(t, "/contact", reset.Header().Get("Location"))

	form := site.get("/contact", sess).Body.String()
	assert.Contains(t, form, "Send Message")
	assert.NotContains(t, form, "Message Sent!")
	assert.NotContains(t, form, `value="Ada"`)
}

func TestContactDispatchFailure(t *testing.T) {
	d := &fakeDispatcher{err: errors.New("emailjs: status 500")}
	site := newTestSite(t, d)
	sess := session(t, site)

	w := site.post("/contact", adaForm, sess)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, domain.ContactFailureNotice)
	assert.Contains(t, body, `value="Ada"`)
	assert.Contains(t, body, "Just saying hello!")
	assert.NotContains(t, body, "disabled")
}

func TestContactRejectsSubmitWhileInFlight(t *testing.T) {
	d := &fakeDispatcher{gate: make(chan struct{}), started: make(chan struct{}, 1)}
	core, logs := observer.New(zapcore.DebugLevel)
	site := newAuditedTestSite(t, d, security.NewSecurityLogger(zap.New(core), "portfolio-site", "test"))
	sess := session(t, site)

	first := make(chan *httptest.ResponseRecorder)
	go func() { first <- site.post("/contact", adaForm, sess) }()
	<-d.started

	page := site.get("/contact", sess).Body.String()
	assert.Contains(t, page, "Sending...")
	assert.Contains(t, page, "disabled")
	assert.Contains(t, page, `http-equiv="refresh"`)

	second := make(chan *httptest.ResponseRecorder)
	go func() { second <- site.post("/contact", adaForm, sess) }()
	require.Eventually(t, func() bool {
		return logs.FilterMessage(string(security.EventContactInFlightRejected)).Len() == 1
	}, time.Second, 5*time.Millisecond)

	close(d.gate)
	assert.Equal(t, http.StatusOK, (<-first).Code)

	resubmit := <-second
	assert.Equal(t, http.StatusOK, resubmit.Code)
	body := resubmit.Body.String()
	assert.Contains(t, body, "Message Sent!")
	assert.NotContains(t, body, "Sending...")
	assert.NotContains(t, body, `http-equiv="refresh"`)
	assert.Equal(t, 1, d.count())
}

func TestContactResubmitSurfacesFailure(t *testing.T) {
	d := &fakeDispatcher{gate: make(chan struct{}), started: make(chan struct{}, 1), err: errors.New("emailjs: status 500")}
	core, logs := observer.New(zapcore.DebugLevel)
	site := newAuditedTestSite(t, d, security.NewSecurityLogger(zap.New(core), "portfolio-site", "test"))
	sess := session(t, site)

	first := make(chan *httptest.ResponseRecorder)
	go func() { first <- site.post("/contact", adaForm, sess) }()
	<-d.started

	second := make(chan *httptest.ResponseRecorder)
	go func() { second <- site.post("/contact", adaForm, sess) }()
	require.Eventually(t, func() bool {
		return logs.FilterMessage(string(security.EventContactInFlightRejected)).Len() == 1
	}, time.Second, 5*time.Millisecond)

	close(d.gate)
	assert.Equal(t, http.StatusBadGateway, (<-first).Code)

	resubmit := <-second
	assert.Equal(t, http.StatusBadGateway, resubmit.Code)
	body := resubmit.Body.String()
	assert.Contains(t, body, domain.ContactFailureNotice)
	assert.Contains(t, body, "Send Message")
	assert.NotContains(t, body, "disabled")
}

func TestContactSessionsAreIndependent(t *testing.T) {
	d := &fakeDispatcher{}
	site := newTestSite(t, d)

	a := session(t, site)
	b := session(t, site)
	require.NotEqual(t, a.Value, b.Value)

	site.post("/contact", adaForm, a)
	assert.NotContains(t, site.get("/contact", b).Body.String(), "Message Sent!")
}
