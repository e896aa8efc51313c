package v1

import (
	"net/http"

	"portfolio-site/config"
	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/internal/delivery/http/web"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ContactUC   domain.ContactUsecase
	HealthUC    usecase.HealthUsecase
	Web         *web.Handler
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	Config      *config.Config
}

// NewRouter assembles the whole site: pages at the root, JSON under /api/v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()

	// Global Middlewares
	r.Use(apiOnly(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.IsRelease())))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsRelease()))
	r.Use(middleware.ErrorHandler(deps.Web.ErrorPage))
	r.Use(deps.RateLimiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindow())))

	contactLimit := deps.RateLimiter.Middleware(middleware.ContactRateLimitConfig(cfg.RateLimitContactThreshold, cfg.RateLimitWindow()))

	r.StaticFS("/static", web.StaticFS())
	deps.Web.Register(r, contactLimit)

	v1 := r.Group("/api/v1")
	NewHealthHandler(v1, deps.HealthUC)
	NewContactHandler(v1, deps.ContactUC, contactLimit)
	NewThemeHandler(v1, cfg.IsRelease())

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		if middleware.IsAPIRequest(c) {
			response.Error(c, http.StatusNotFound, "Resource not found", nil)
			return
		}
		deps.Web.NotFound(c)
	})

	return r
}

// apiOnly runs h for /api requests and passes everything else through.
func apiOnly(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.IsAPIRequest(c) {
			h(c)
			return
		}
		c.Next()
	}
}
