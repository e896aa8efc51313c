package web

import (
	"net/http"

	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/routing"
	"portfolio-site/internal/usecase"
	"portfolio-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	ThemeCookie = "theme"
	// ThemeHeader echoes the new mode on responses that changed it.
	ThemeHeader    = "X-Theme-Mode"
	themeCookieAge = 365 * 24 * 60 * 60
)

// cookieStorage persists the theme mode in the visitor's theme cookie.
type cookieStorage struct {
	c      *gin.Context
	secure bool
}

// NewCookieStorage is the request-scoped PreferenceStorage used by page handlers.
func NewCookieStorage(c *gin.Context, secure bool) domain.PreferenceStorage {
	return &cookieStorage{c: c, secure: secure}
}

func (s *cookieStorage) Load() (string, bool) {
	v, err := s.c.Cookie(ThemeCookie)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *cookieStorage) Save(value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(ThemeCookie, value, themeCookieAge, "/", "", s.secure, true)
	return nil
}

// ThemeStore builds the store for the current request. A change is echoed in
// ThemeHeader and recorded for the request log.
func ThemeStore(c *gin.Context, secure bool) domain.ThemeStore {
	store := usecase.NewThemeStore(NewCookieStorage(c, secure), func() string {
		return c.GetHeader(middleware.ColorSchemeHint)
	})
	store.Subscribe(func(mode domain.ThemeMode) {
		c.Header(ThemeHeader, string(mode))
		c.Set(middleware.ThemeChangeKey, string(mode))
	})
	return store
}

// ThemeView is what the layout needs to draw the switcher.
type ThemeView struct {
	Mode     domain.ThemeMode
	Resolved domain.ThemeMode
	Next     domain.ThemeMode
	Label    string
}

func themeView(store domain.ThemeStore) ThemeView {
	mode := store.Get()
	return ThemeView{
		Mode:     mode,
		Resolved: store.Resolved(),
		Next:     mode.Next(),
		Label:    mode.Label(),
	}
}

// toggleTheme cycles the mode and sends the visitor back where they were.
func (h *Handler) toggleTheme(c *gin.Context) {
	if _, err := ThemeStore(c, h.secure).Toggle(); err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	c.Redirect(http.StatusSeeOther, returnTo(c))
}

func (h *Handler) setTheme(c *gin.Context) {
	mode, err := domain.ParseThemeMode(c.PostForm("mode"))
	if err != nil {
		_ = c.Error(apperror.BadRequest("Unknown theme mode"))
		return
	}
	if err := ThemeStore(c, h.secure).Set(mode); err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	c.Redirect(http.StatusSeeOther, returnTo(c))
}

func returnTo(c *gin.Context) string {
	if p := c.PostForm("return_to"); routing.IsLocalPath(p) {
		return p
	}
	return "/"
}
