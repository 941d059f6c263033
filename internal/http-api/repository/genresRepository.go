package repository

import (
	"context"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, g *models.Genre) error
	List(ctx context.Context) ([]models.Genre, error)
	FindByID(ctx context.Context, id string) (*models.Genre, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Genre, error)
	Count(ctx context.Context) (int64, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, g *models.Genre) error {
	return translate("create genre", r.db.WithContext(ctx).Create(g).Error)
}

func (r *genreRepository) List(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, translate("list genres", err)
	}
	return list, nil
}

func (r *genreRepository) FindByID(ctx context.Context, id string) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, translate("find genre", err)
	}
	return &g, nil
}

// FindByIDs returns the genres that exist among ids; callers compare lengths
// to detect unknown ids.
func (r *genreRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Genre, error) {
	list := []models.Genre{}
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name asc").Find(&list).Error; err != nil {
		return nil, translate("find genres", err)
	}
	return list, nil
}

func (r *genreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Count(&n).Error; err != nil {
		return 0, translate("count genres", err)
	}
	return n, nil
}
