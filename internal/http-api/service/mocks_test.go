package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"locallibrary/internal/http-api/models"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameFold(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, b *models.Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookRepository) Update(ctx context.Context, b *models.Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookRepository) FindByID(ctx context.Context, id string) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) ListSummaries(ctx context.Context) ([]models.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Book, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) ListByGenre(ctx context.Context, genreID string) ([]models.Book, error) {
	args := m.Called(ctx, genreID)
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookInstanceRepository struct {
	mock.Mock
}

func (m *MockBookInstanceRepository) Create(ctx context.Context, bi *models.BookInstance) error {
	return m.Called(ctx, bi).Error(0)
}

func (m *MockBookInstanceRepository) List(ctx context.Context) ([]models.BookInstance, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.BookInstance), args.Error(1)
}

func (m *MockBookInstanceRepository) FindByID(ctx context.Context, id string) (*models.BookInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookInstance), args.Error(1)
}

func (m *MockBookInstanceRepository) ListByBook(ctx context.Context, bookID string) ([]models.BookInstance, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]models.BookInstance), args.Error(1)
}

func (m *MockBookInstanceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookInstanceRepository) CountByStatus(ctx context.Context, status models.InstanceStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) Create(ctx context.Context, a *models.Author) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAuthorRepository) List(ctx context.Context) ([]models.Author, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindByID(ctx context.Context, id string) (*models.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) Create(ctx context.Context, g *models.Genre) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGenreRepository) List(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindByID(ctx context.Context, id string) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Genre, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
