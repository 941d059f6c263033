package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/repository"
)

type BookService interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id string) (*models.Book, error)
	Detail(ctx context.Context, id string) (*models.Book, []models.BookInstance, error)
	FormOptions(ctx context.Context) ([]models.Author, []models.Genre, error)
	Create(ctx context.Context, b *models.Book) error
	Update(ctx context.Context, b *models.Book) error
	Delete(ctx context.Context, id string) error
}

type bookService struct {
	books     repository.BookRepository
	instances repository.BookInstanceRepository
	authors   repository.AuthorRepository
	genres    repository.GenreRepository
}

func NewBookService(
	books repository.BookRepository,
	instances repository.BookInstanceRepository,
	authors repository.AuthorRepository,
	genres repository.GenreRepository,
) BookService {
	return &bookService{books: books, instances: instances, authors: authors, genres: genres}
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.books.ListSummaries(ctx)
}

func (s *bookService) Get(ctx context.Context, id string) (*models.Book, error) {
	return s.books.FindByID(ctx, id)
}

// Detail fetches the book and its copies concurrently.
func (s *bookService) Detail(ctx context.Context, id string) (*models.Book, []models.BookInstance, error) {
	var (
		book      *models.Book
		instances []models.BookInstance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		book, err = s.books.FindByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		instances, err = s.instances.ListByBook(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return book, instances, nil
}

// FormOptions loads the author and genre choices for the book form.
func (s *bookService) FormOptions(ctx context.Context) ([]models.Author, []models.Genre, error) {
	var (
		authors []models.Author
		genres  []models.Genre
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		authors, err = s.authors.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		genres, err = s.genres.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return authors, genres, nil
}

func (s *bookService) Create(ctx context.Context, b *models.Book) error {
	if err := s.resolveReferences(ctx, b); err != nil {
		return err
	}
	return s.books.Create(ctx, b)
}

// Update replaces the book with b.ID; the id is never reassigned.
func (s *bookService) Update(ctx context.Context, b *models.Book) error {
	if b.ID == "" {
		return ErrNotFound
	}
	if err := s.resolveReferences(ctx, b); err != nil {
		return err
	}
	return s.books.Update(ctx, b)
}

// Delete refuses to remove a book that still has copies.
func (s *bookService) Delete(ctx context.Context, id string) error {
	instances, err := s.instances.ListByBook(ctx, id)
	if err != nil {
		return err
	}
	if len(instances) > 0 {
		return ErrBookHasCopies
	}
	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHasDependents) {
			return ErrBookHasCopies
		}
		return err
	}
	return nil
}

// resolveReferences checks the author and every genre exist and replaces
// b.Genres with the stored rows. Both problems are reported together.
func (s *bookService) resolveReferences(ctx context.Context, b *models.Book) error {
	var problems []error

	if _, err := s.authors.FindByID(ctx, b.AuthorID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		problems = append(problems, ErrUnknownAuthor)
	}

	wanted := b.GenreIDs()
	found, err := s.genres.FindByIDs(ctx, wanted)
	if err != nil {
		return err
	}
	if len(found) != len(wanted) {
		problems = append(problems, ErrUnknownGenre)
	} else {
		b.Genres = found
	}

	return errors.Join(problems...)
}
