package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"
	"locallibrary/internal/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSignup_CreatesSessionAndRedirects(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	manager := session.NewManager(session.NewRedisStore(client, time.Hour), testSecret, time.Hour, false)

	r, auth := anonymous(t)
	h := NewAuthHandler(auth, manager)
	h.RegisterRoutes(r.Group("/auth"))

	auth.On("Register", mock.Anything, service.SignupInput{Username: "longenough", Password: "Abcdef1!", AdminCode: ""}).
		Return(&models.User{ID: "u-42", Username: "longenough", IsAdmin: false}, nil)

	w := postForm(r, "/auth/signup", url.Values{
		"username":  {"longenough"},
		"password":  {"Abcdef1!"},
		"admincode": {""},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog", w.Header().Get("Location"))

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.AddCookie(cookie)
	userID, ok, err := manager.Resolve(req)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u-42", userID)

	auth.AssertExpectations(t)
}

func TestSignup_ReportsEveryPasswordProblem(t *testing.T) {
	r, auth := anonymous(t)
	NewAuthHandler(auth, &stubSessions{}).RegisterRoutes(r.Group("/auth"))

	w := postForm(r, "/auth/signup", url.Values{
		"username": {"longenough"},
		"password": {"abcdefgh"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Password must have an uppercase letter.")
	assert.Contains(t, body, "Password must have at least one digit.")
	assert.Contains(t, body, "Password must have at least one of the following symbols (!,@,#,$,%)")
	assert.NotContains(t, body, "Password must have a lowercase letter.")
	assert.Contains(t, body, `value="longenough"`)
	auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSignup_CaseVariantUsernameIsTaken(t *testing.T) {
	r, auth := anonymous(t)
	sessions := &stubSessions{}
	NewAuthHandler(auth, sessions).RegisterRoutes(r.Group("/auth"))

	auth.On("Register", mock.Anything, mock.MatchedBy(func(in service.SignupInput) bool {
		return in.Username == "LongEnough"
	})).Return(nil, service.ErrNameInUse)

	w := postForm(r, "/auth/signup", url.Values{
		"username": {"LongEnough"},
		"password": {"Abcdef1!"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Username is taken!")
	assert.Contains(t, w.Body.String(), `value="LongEnough"`)
	assert.Empty(t, sessions.started)
}

func TestSignup_SessionFailureSendsToLogin(t *testing.T) {
	r, auth := anonymous(t)
	NewAuthHandler(auth, &stubSessions{startErr: errors.New("redis down")}).RegisterRoutes(r.Group("/auth"))

	auth.On("Register", mock.Anything, mock.Anything).Return(&models.User{ID: "u-1"}, nil)

	w := postForm(r, "/auth/signup", url.Values{
		"username": {"longenough"},
		"password": {"Abcdef1!"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestSignup_StoreFailureIsServerError(t *testing.T) {
	r, auth := anonymous(t)
	NewAuthHandler(auth, &stubSessions{}).RegisterRoutes(r.Group("/auth"))

	auth.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	w := postForm(r, "/auth/signup", url.Values{
		"username": {"longenough"},
		"password": {"Abcdef1!"},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestLogin_Success(t *testing.T) {
	r, auth := anonymous(t)
	sessions := &stubSessions{}
	NewAuthHandler(auth, sessions).RegisterRoutes(r.Group("/auth"))

	auth.On("Login", mock.Anything, "longenough", "Abcdef1!").Return(&models.User{ID: "u-7"}, nil)

	w := postForm(r, "/auth/login", url.Values{"username": {"longenough"}, "password": {"Abcdef1!"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog", w.Header().Get("Location"))
	assert.Equal(t, []string{"u-7"}, sessions.started)
	assert.Equal(t, 1, sessions.ended)
}

func TestLogin_ReplacesEarlierSession(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	manager := session.NewManager(session.NewRedisStore(client, time.Hour), testSecret, time.Hour, false)

	earlier := httptest.NewRecorder()
	require.NoError(t, manager.Start(context.Background(), earlier, "u-1"))
	oldCookie := earlier.Result().Cookies()[0]

	r, auth := anonymous(t)
	NewAuthHandler(auth, manager).RegisterRoutes(r.Group("/auth"))
	auth.On("Login", mock.Anything, "otheruser1", "Abcdef1!").Return(&models.User{ID: "u-2"}, nil)

	form := url.Values{"username": {"otheruser1"}, "password": {"Abcdef1!"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(oldCookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)

	stale := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	stale.AddCookie(oldCookie)
	_, ok, err := manager.Resolve(stale)
	require.NoError(t, err)
	assert.False(t, ok)

	var fresh *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			fresh = c
		}
	}
	require.NotNil(t, fresh)
	current := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	current.AddCookie(fresh)
	userID, ok, err := manager.Resolve(current)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u-2", userID)
}

func TestLogin_BadCredentials(t *testing.T) {
	r, auth := anonymous(t)
	sessions := &stubSessions{}
	NewAuthHandler(auth, sessions).RegisterRoutes(r.Group("/auth"))

	auth.On("Login", mock.Anything, "longenough", "wrong").Return(nil, service.ErrInvalidCredentials)

	w := postForm(r, "/auth/login", url.Values{"username": {"longenough"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
	assert.Empty(t, sessions.started)
}

func TestLogout(t *testing.T) {
	r, auth := anonymous(t)
	sessions := &stubSessions{}
	NewAuthHandler(auth, sessions).RegisterRoutes(r.Group("/auth"))

	w := get(r, "/auth/logout")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth", w.Header().Get("Location"))
	assert.Equal(t, 1, sessions.ended)
}

func TestAuthRootRedirectsToLogin(t *testing.T) {
	r, auth := anonymous(t)
	NewAuthHandler(auth, &stubSessions{}).RegisterRoutes(r.Group("/auth"))

	w := get(r, "/auth")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestSignupForm_ShowsNavigationForAnonymous(t *testing.T) {
	r, auth := anonymous(t)
	NewAuthHandler(auth, &stubSessions{}).RegisterRoutes(r.Group("/auth"))

	w := get(r, "/auth/signup")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/auth/login"`)
	assert.NotContains(t, w.Body.String(), "Signed in as")
}
