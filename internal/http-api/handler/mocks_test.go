package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"
	"locallibrary/internal/http-api/view"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.SignupInput) (*models.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Identify(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockBookService mocks the BookService interface
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) List(ctx context.Context) ([]models.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookService) Get(ctx context.Context, id string) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) Detail(ctx context.Context, id string) (*models.Book, []models.BookInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Book), args.Get(1).([]models.BookInstance), args.Error(2)
}

func (m *MockBookService) FormOptions(ctx context.Context) ([]models.Author, []models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.Author), args.Get(1).([]models.Genre), args.Error(2)
}

func (m *MockBookService) Create(ctx context.Context, b *models.Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookService) Update(ctx context.Context, b *models.Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockCatalogService mocks the CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Counts(ctx context.Context) (service.Counts, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.Counts), args.Error(1)
}

// MockAuthorService mocks the AuthorService interface
type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) List(ctx context.Context) ([]models.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorService) Detail(ctx context.Context, id string) (*models.Author, []models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Author), args.Get(1).([]models.Book), args.Error(2)
}

func (m *MockAuthorService) Create(ctx context.Context, a *models.Author) error {
	return m.Called(ctx, a).Error(0)
}

// MockGenreService mocks the GenreService interface
type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) List(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreService) Detail(ctx context.Context, id string) (*models.Genre, []models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Genre), args.Get(1).([]models.Book), args.Error(2)
}

func (m *MockGenreService) Create(ctx context.Context, g *models.Genre) error {
	return m.Called(ctx, g).Error(0)
}

// MockInstanceService mocks the InstanceService interface
type MockInstanceService struct {
	mock.Mock
}

func (m *MockInstanceService) List(ctx context.Context) ([]models.BookInstance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookInstance), args.Error(1)
}

func (m *MockInstanceService) Get(ctx context.Context, id string) (*models.BookInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookInstance), args.Error(1)
}

func (m *MockInstanceService) Create(ctx context.Context, bi *models.BookInstance) error {
	return m.Called(ctx, bi).Error(0)
}

// fixedSession resolves every request to userID, or to nobody when empty.
type fixedSession struct {
	userID string
}

func (f fixedSession) Resolve(*http.Request) (string, bool, error) {
	if f.userID == "" {
		return "", false, nil
	}
	return f.userID, true, nil
}

// stubSessions records Start and End calls.
type stubSessions struct {
	startErr error
	started  []string
	ended    int
}

func (s *stubSessions) Start(_ context.Context, _ http.ResponseWriter, userID string) error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started = append(s.started, userID)
	return nil
}

func (s *stubSessions) End(context.Context, http.ResponseWriter, *http.Request) error {
	s.ended++
	return nil
}

func setupRouter(t *testing.T, sessions middleware.SessionResolver, auth service.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := view.Load()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.ErrorPages(false), middleware.Recovery(), middleware.Identify(sessions, auth))
	r.NoRoute(middleware.NotFound)
	return r
}

// signedIn returns a router whose every request acts as user u1.
func signedIn(t *testing.T, admin bool) (*gin.Engine, *MockAuthService) {
	t.Helper()
	auth := new(MockAuthService)
	auth.On("Identify", mock.Anything, "u1").
		Return(&models.User{ID: "u1", Username: "librarian", IsAdmin: admin}, nil)
	return setupRouter(t, fixedSession{userID: "u1"}, auth), auth
}

func anonymous(t *testing.T) (*gin.Engine, *MockAuthService) {
	t.Helper()
	auth := new(MockAuthService)
	return setupRouter(t, fixedSession{}, auth), auth
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
