package service

import (
	"context"
	"fmt"
	"strings"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

type GenreService interface {
	List(ctx context.Context) ([]models.Genre, error)
	Detail(ctx context.Context, id string) (*models.Genre, []models.Book, error)
	Create(ctx context.Context, g *models.Genre) error
}

type genreService struct {
	genres repository.GenreRepository
	books  repository.BookRepository
}

func NewGenreService(genres repository.GenreRepository, books repository.BookRepository) GenreService {
	return &genreService{genres: genres, books: books}
}

func (s *genreService) List(ctx context.Context) ([]models.Genre, error) {
	return s.genres.List(ctx)
}

func (s *genreService) Detail(ctx context.Context, id string) (*models.Genre, []models.Book, error) {
	g, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	books, err := s.books.ListByGenre(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return g, books, nil
}

// Create stores a genre; names are 3 to 100 characters.
func (s *genreService) Create(ctx context.Context, g *models.Genre) error {
	g.Name = strings.TrimSpace(g.Name)
	if n := len([]rune(g.Name)); n < 3 || n > 100 {
		return fmt.Errorf("%w: genre name must be 3 to 100 characters", ErrInvalidInput)
	}
	return s.genres.Create(ctx, g)
}
