package router

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/config"
	"locallibrary/internal/http-api/middleware"
)

type noSessions struct{}

func (noSessions) Resolve(*http.Request) (string, bool, error) { return "", false, nil }
func (noSessions) Start(context.Context, http.ResponseWriter, string) error {
	return nil
}
func (noSessions) End(context.Context, http.ResponseWriter, *http.Request) error {
	return nil
}

func newTestEngine(t *testing.T, health func(context.Context) error) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := New(Deps{
		Config:   &config.Config{GoEnv: "test", MetricsEnabled: true},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions: noSessions{},
		Limiter:  middleware.NewRateLimiter(100),
		Health:   health,
	})
	require.NoError(t, err)
	return r
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRootRedirectsToCatalog(t *testing.T) {
	w := serve(newTestEngine(t, nil), "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog", w.Header().Get("Location"))
}

func TestHealthz(t *testing.T) {
	w := serve(newTestEngine(t, func(context.Context) error { return nil }), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = serve(newTestEngine(t, func(context.Context) error { return errors.New("db down") }), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestEngine(t, nil)
	serve(r, "/healthz")

	w := serve(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "locallibrary_http_requests_total")
}

func TestMiddlewareChainOnUnknownRoute(t *testing.T) {
	w := serve(newTestEngine(t, nil), "/catalog/nothing/here")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Body.String(), "Not Found")
}

func TestAuthRoutesAreMounted(t *testing.T) {
	w := serve(newTestEngine(t, nil), "/auth")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))

	w = serve(newTestEngine(t, nil), "/auth/login")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWritesRequireLogin(t *testing.T) {
	w := serve(newTestEngine(t, nil), "/catalog/book/create")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := New(Deps{
		Config:   &config.Config{GoEnv: "test"},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions: noSessions{},
		Limiter:  middleware.NewRateLimiter(3),
	})
	require.NoError(t, err)

	codes := make([]int, 0, 4)
	for _, ip := range []string{"192.0.2.1", "192.0.2.2", "192.0.2.3", "192.0.2.4"} {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.9:5000"
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 200, 429}, codes)
}

func TestNewRejectsMalformedTrustedProxy(t *testing.T) {
	_, err := New(Deps{
		Config:   &config.Config{GoEnv: "test", TrustedProxies: []string{"not-an-ip"}},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions: noSessions{},
	})
	assert.ErrorContains(t, err, "trusted proxies")
}
