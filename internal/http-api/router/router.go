package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/config"
	"locallibrary/internal/http-api/handler"
	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/service"
	"locallibrary/internal/http-api/view"
	"locallibrary/internal/metrics"
)

// Deps is everything the HTTP surface needs.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Sessions interface {
		middleware.SessionResolver
		handler.Sessions
	}
	Limiter   *middleware.RateLimiter
	Auth      service.AuthService
	Catalog   service.CatalogService
	Books     service.BookService
	Authors   service.AuthorService
	Genres    service.GenreService
	Instances service.InstanceService

	// Health reports whether the backing stores are reachable.
	Health func(ctx context.Context) error
}

// New builds the gin engine with the full middleware chain and all routes.
func New(d Deps) (*gin.Engine, error) {
	tmpl, err := view.Load()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	// ClientIP keys the rate limiter, so forwarded headers count only from known proxies.
	if err := r.SetTrustedProxies(d.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(
		middleware.RequestLogger(d.Logger),
		middleware.ErrorPages(d.Config.IsDevelopment()),
		middleware.Recovery(),
		middleware.SecurityHeaders(d.Config.IsProduction()),
	)
	if d.Limiter != nil {
		r.Use(d.Limiter.Handler())
	}
	if d.Config.MetricsEnabled {
		r.Use(metrics.Middleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	r.GET("/healthz", healthz(d.Health))

	r.Use(middleware.Identify(d.Sessions, d.Auth))
	r.NoRoute(middleware.NotFound)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	handler.NewAuthHandler(d.Auth, d.Sessions).RegisterRoutes(r.Group("/auth"))

	catalog := r.Group("/catalog")
	handler.NewCatalogHandler(d.Catalog).RegisterRoutes(catalog)
	handler.NewBookHandler(d.Books).RegisterRoutes(catalog)
	handler.NewAuthorHandler(d.Authors).RegisterRoutes(catalog)
	handler.NewGenreHandler(d.Genres).RegisterRoutes(catalog)
	handler.NewInstanceHandler(d.Instances).RegisterRoutes(catalog)

	return r, nil
}

func healthz(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				middleware.Logger(c).Warn("health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
