package repository

import (
	"context"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(ctx context.Context, a *models.Author) error
	List(ctx context.Context) ([]models.Author, error)
	FindByID(ctx context.Context, id string) (*models.Author, error)
	Count(ctx context.Context) (int64, error)
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *models.Author) error {
	return translate("create author", r.db.WithContext(ctx).Create(a).Error)
}

// List returns every author ordered by family name.
func (r *authorRepository) List(ctx context.Context) ([]models.Author, error) {
	var list []models.Author
	if err := r.db.WithContext(ctx).Order("family_name asc").Find(&list).Error; err != nil {
		return nil, translate("list authors", err)
	}
	return list, nil
}

func (r *authorRepository) FindByID(ctx context.Context, id string) (*models.Author, error) {
	var a models.Author
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate("find author", err)
	}
	return &a, nil
}

func (r *authorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Author{}).Count(&n).Error; err != nil {
		return 0, translate("count authors", err)
	}
	return n, nil
}
