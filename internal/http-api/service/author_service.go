package service

import (
	"context"
	"fmt"
	"strings"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

type AuthorService interface {
	List(ctx context.Context) ([]models.Author, error)
	Detail(ctx context.Context, id string) (*models.Author, []models.Book, error)
	Create(ctx context.Context, a *models.Author) error
}

type authorService struct {
	authors repository.AuthorRepository
	books   repository.BookRepository
}

func NewAuthorService(authors repository.AuthorRepository, books repository.BookRepository) AuthorService {
	return &authorService{authors: authors, books: books}
}

func (s *authorService) List(ctx context.Context) ([]models.Author, error) {
	return s.authors.List(ctx)
}

func (s *authorService) Detail(ctx context.Context, id string) (*models.Author, []models.Book, error) {
	a, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	books, err := s.books.ListByAuthor(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return a, books, nil
}

func (s *authorService) Create(ctx context.Context, a *models.Author) error {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.FamilyName = strings.TrimSpace(a.FamilyName)
	if a.FirstName == "" || a.FamilyName == "" {
		return fmt.Errorf("%w: first and family name are required", ErrInvalidInput)
	}
	if a.DateOfBirth != nil && a.DateOfDeath != nil && a.DateOfDeath.Before(*a.DateOfBirth) {
		return fmt.Errorf("%w: date of death is before date of birth", ErrInvalidInput)
	}
	return s.authors.Create(ctx, a)
}
