package repository

import (
	"context"

	"locallibrary/internal/http-api/models"

	"gorm.io/gorm"
)

type BookInstanceRepository interface {
	Create(ctx context.Context, bi *models.BookInstance) error
	List(ctx context.Context) ([]models.BookInstance, error)
	FindByID(ctx context.Context, id string) (*models.BookInstance, error)
	ListByBook(ctx context.Context, bookID string) ([]models.BookInstance, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.InstanceStatus) (int64, error)
}

type bookInstanceRepository struct {
	db *gorm.DB
}

func NewBookInstanceRepository(db *gorm.DB) BookInstanceRepository {
	return &bookInstanceRepository{db: db}
}

func (r *bookInstanceRepository) Create(ctx context.Context, bi *models.BookInstance) error {
	return translate("create book instance", r.db.WithContext(ctx).Omit("Book").Create(bi).Error)
}

// List returns every copy with its book populated.
func (r *bookInstanceRepository) List(ctx context.Context) ([]models.BookInstance, error) {
	var list []models.BookInstance
	if err := r.db.WithContext(ctx).Preload("Book").Order("imprint asc").Find(&list).Error; err != nil {
		return nil, translate("list book instances", err)
	}
	return list, nil
}

func (r *bookInstanceRepository) FindByID(ctx context.Context, id string) (*models.BookInstance, error) {
	var bi models.BookInstance
	if err := r.db.WithContext(ctx).Preload("Book").First(&bi, "id = ?", id).Error; err != nil {
		return nil, translate("find book instance", err)
	}
	return &bi, nil
}

func (r *bookInstanceRepository) ListByBook(ctx context.Context, bookID string) ([]models.BookInstance, error) {
	list := []models.BookInstance{}
	if err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Find(&list).Error; err != nil {
		return nil, translate("list book instances by book", err)
	}
	return list, nil
}

func (r *bookInstanceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.BookInstance{}).Count(&n).Error; err != nil {
		return 0, translate("count book instances", err)
	}
	return n, nil
}

func (r *bookInstanceRepository) CountByStatus(ctx context.Context, status models.InstanceStatus) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.BookInstance{}).Where("status = ?", status).Count(&n).Error; err != nil {
		return 0, translate("count book instances by status", err)
	}
	return n, nil
}
