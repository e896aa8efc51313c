package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfolio-site/config"
	_ "portfolio-site/docs" // Important for Swagger
	"portfolio-site/internal/delivery/http/middleware"
	v1 "portfolio-site/internal/delivery/http/v1"
	"portfolio-site/internal/delivery/http/web"
	"portfolio-site/internal/repository/static"
	"portfolio-site/internal/usecase"
	"portfolio-site/pkg/emailjs"
	"portfolio-site/pkg/logger"
	"portfolio-site/pkg/markdown"
	redisclient "portfolio-site/pkg/redis"
	"portfolio-site/pkg/security"
	"portfolio-site/pkg/validation"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout     = 5 * time.Second
	rateLimitSweepEvery = 5 * time.Minute
	dispatchTimeout     = 15 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.IsRelease())
	defer logger.Sync()
	zl := logger.Log.Desugar()
	logger.Log.Infow("Starting portfolio site", "port", cfg.Port, "env", cfg.AppEnv)

	audit := security.NewSecurityLogger(zl, "portfolio-site", cfg.AppEnv)

	// 3. Load embedded content
	catalog, err := static.Load()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	// 4. Setup Email Dispatch
	mailer := emailjs.NewClient(emailjs.Config{
		ServiceID:  cfg.EmailJSServiceID,
		TemplateID: cfg.EmailJSTemplateID,
		PublicKey:  cfg.EmailJSPublicKey,
		PrivateKey: cfg.EmailJSPrivateKey,
		Endpoint:   cfg.EmailJSEndpoint,
	}, &http.Client{Timeout: dispatchTimeout})
	if !cfg.EmailJSConfigured() {
		logger.Log.Warnw("EmailJS not fully configured - contact form will report failures", "missing", cfg.MissingEmailJSKeys())
	}
	dispatcher := usecase.NewEmailJSDispatcher(mailer)

	// 5. Setup Redis (optional)
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisclient.Connect(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warnw("Redis unavailable - rate limiting falls back to memory", "error", err)
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	// 6. Setup UseCases
	contentUC := usecase.NewContentUsecase(
		static.NewProjectRepository(catalog),
		static.NewServiceRepository(catalog),
		static.NewBlogRepository(catalog),
		static.NewProfileRepository(catalog),
	)
	contactUC := usecase.NewContactUsecase(dispatcher, validation.New(), audit, cfg.ContactSessionTTL())
	healthUC := usecase.NewHealthUsecase(rdb, dispatcher)

	// 7. Setup Router
	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	limiter := middleware.NewRateLimiter(rdb, audit)
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Web: web.NewHandler(web.HandlerDeps{
			ContentUC: contentUC,
			ContactUC: contactUC,
			Renderer:  renderer,
			Markdown:  markdown.NewRenderer(),
			Site: web.SiteInfo{
				Name:   cfg.SiteName,
				URL:    cfg.SiteURL,
				Author: cfg.SiteAuthor,
			},
			Secure: cfg.IsRelease(),
		}),
		RateLimiter: limiter,
		Logger:      zl,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return limiter.RunCleanup(gctx, rateLimitSweepEvery)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("Server stopped with error", "error", err)
		return err
	}
	logger.Log.Info("Server exiting")
	return nil
}
