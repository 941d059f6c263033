package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

type InstanceService interface {
	List(ctx context.Context) ([]models.BookInstance, error)
	Get(ctx context.Context, id string) (*models.BookInstance, error)
	Create(ctx context.Context, bi *models.BookInstance) error
}

type instanceService struct {
	instances repository.BookInstanceRepository
	books     repository.BookRepository
}

func NewInstanceService(instances repository.BookInstanceRepository, books repository.BookRepository) InstanceService {
	return &instanceService{instances: instances, books: books}
}

func (s *instanceService) List(ctx context.Context) ([]models.BookInstance, error) {
	return s.instances.List(ctx)
}

func (s *instanceService) Get(ctx context.Context, id string) (*models.BookInstance, error) {
	return s.instances.FindByID(ctx, id)
}

// Create adds a copy of an existing book.
func (s *instanceService) Create(ctx context.Context, bi *models.BookInstance) error {
	bi.Imprint = strings.TrimSpace(bi.Imprint)
	if bi.Imprint == "" {
		return fmt.Errorf("%w: imprint is required", ErrInvalidInput)
	}
	if bi.Status != "" {
		if _, ok := models.ParseInstanceStatus(string(bi.Status)); !ok {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, bi.Status)
		}
	}
	if _, err := s.books.FindByID(ctx, bi.BookID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: book %s does not exist", ErrInvalidInput, bi.BookID)
		}
		return err
	}
	return s.instances.Create(ctx, bi)
}
