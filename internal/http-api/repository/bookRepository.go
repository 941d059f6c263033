package repository

import (
	"context"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	Create(ctx context.Context, b *models.Book) error
	Update(ctx context.Context, b *models.Book) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Book, error)
	ListSummaries(ctx context.Context) ([]models.Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Book, error)
	ListByGenre(ctx context.Context, genreID string) ([]models.Book, error)
	Count(ctx context.Context) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Create inserts the book row and its genre links in one transaction.
// Genres are linked by id only; they are never upserted.
func (r *bookRepository) Create(ctx context.Context, b *models.Book) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return translate("create book", err)
		}
		return linkGenres(tx, b.ID, b.GenreIDs())
	})
}

// Update replaces every column and the genre links of the book with b.ID.
func (r *bookRepository) Update(ctx context.Context, b *models.Book) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Book{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
			"title":     b.Title,
			"author_id": b.AuthorID,
			"summary":   b.Summary,
			"isbn":      b.ISBN,
		})
		if res.Error != nil {
			return translate("update book", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("book_id = ?", b.ID).Delete(&models.BookGenre{}).Error; err != nil {
			return translate("unlink genres", err)
		}
		return linkGenres(tx, b.ID, b.GenreIDs())
	})
}

// Delete removes the book and its genre links. Copies referencing the book
// make the foreign key fail, surfaced as ErrHasDependents.
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&models.BookGenre{}).Error; err != nil {
			return translate("unlink genres", err)
		}
		res := tx.Delete(&models.Book{}, "id = ?", id)
		if res.Error != nil {
			return translate("delete book", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// FindByID loads the book with author and genres populated.
func (r *bookRepository) FindByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, translate("find book", err)
	}
	return &b, nil
}

// ListSummaries returns id, title and author for every book, sorted by title
// with byte-wise ("C") collation.
func (r *bookRepository) ListSummaries(ctx context.Context) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Select("id", "title", "author_id").
		Preload("Author").
		Order(`title COLLATE "C" asc`).
		Find(&list).Error; err != nil {
		return nil, translate("list books", err)
	}
	return list, nil
}

func (r *bookRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Select("id", "title", "summary", "author_id").
		Where("author_id = ?", authorID).
		Order(`title COLLATE "C" asc`).
		Find(&list).Error; err != nil {
		return nil, translate("list books by author", err)
	}
	return list, nil
}

func (r *bookRepository) ListByGenre(ctx context.Context, genreID string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Joins("JOIN book_genres bg ON bg.book_id = books.id").
		Where("bg.genre_id = ?", genreID).
		Order(`books.title COLLATE "C" asc`).
		Find(&list).Error; err != nil {
		return nil, translate("list books by genre", err)
	}
	return list, nil
}

func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&n).Error; err != nil {
		return 0, translate("count books", err)
	}
	return n, nil
}

func linkGenres(tx *gorm.DB, bookID string, genreIDs []string) error {
	if len(genreIDs) == 0 {
		return nil
	}
	links := make([]models.BookGenre, 0, len(genreIDs))
	for _, id := range genreIDs {
		links = append(links, models.BookGenre{BookID: bookID, GenreID: id})
	}
	if err := tx.Create(&links).Error; err != nil {
		return translate("link genres", err)
	}
	return nil
}
