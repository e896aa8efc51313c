package v1

import (
	"net/http"

	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/internal/delivery/http/web"
	"portfolio-site/internal/domain"
	"portfolio-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	secure bool
}

// ThemeRequest sets the visitor's theme mode.
type ThemeRequest struct {
	Mode string `json:"mode" binding:"required" example:"dark"`
}

// ThemeResponse reports the stored mode and what it resolves to.
type ThemeResponse struct {
	Mode     domain.ThemeMode `json:"mode" example:"system"`
	Resolved domain.ThemeMode `json:"resolved" example:"light"`
}

func NewThemeHandler(public *gin.RouterGroup, secure bool) {
	handler := &ThemeHandler{secure: secure}

	public.GET("/theme", handler.GetTheme)
	public.PUT("/theme", handler.SetTheme)
}

// GetTheme godoc
// @Summary      Get Theme
// @Description  Current theme mode from the theme cookie, defaulting to system.
// @Tags         theme
// @Produce      json
// @Success      200  {object}  response.Response{data=ThemeResponse}
// @Router       /theme [get]
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	store := web.ThemeStore(c, h.secure)
	response.Success(c, http.StatusOK, "Theme retrieved", ThemeResponse{
		Mode:     store.Get(),
		Resolved: store.Resolved(),
	})
}

// SetTheme godoc
// @Summary      Set Theme
// @Description  Persist light, dark or system in the theme cookie.
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        theme  body      ThemeRequest  true  "Theme mode"
// @Success      200    {object}  response.Response{data=ThemeResponse}
// @Failure      400    {object}  response.Response
// @Router       /theme [put]
func (h *ThemeHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON body"))
		return
	}
	mode, err := domain.ParseThemeMode(req.Mode)
	if err != nil {
		c.Error(apperror.BadRequest("Theme mode must be light, dark or system"))
		return
	}

	store := web.ThemeStore(c, h.secure)
	if err := store.Set(mode); err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Theme updated", ThemeResponse{
		Mode:     store.Get(),
		Resolved: store.Resolved(),
	})
}
