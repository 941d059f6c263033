package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

// Counts is the dashboard snapshot. Each number is read independently, so
// they may disagree under concurrent writes.
type Counts struct {
	Books              int64
	BookInstances      int64
	AvailableInstances int64
	Authors            int64
	Genres             int64
}

type CatalogService interface {
	Counts(ctx context.Context) (Counts, error)
}

type catalogService struct {
	books     repository.BookRepository
	instances repository.BookInstanceRepository
	authors   repository.AuthorRepository
	genres    repository.GenreRepository
}

func NewCatalogService(
	books repository.BookRepository,
	instances repository.BookInstanceRepository,
	authors repository.AuthorRepository,
	genres repository.GenreRepository,
) CatalogService {
	return &catalogService{books: books, instances: instances, authors: authors, genres: genres}
}

func (s *catalogService) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c.Books, err = s.books.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		c.BookInstances, err = s.instances.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		c.AvailableInstances, err = s.instances.CountByStatus(gctx, models.StatusAvailable)
		return err
	})
	g.Go(func() (err error) {
		c.Authors, err = s.authors.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		c.Genres, err = s.genres.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return c, nil
}
