package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid"`
	Title    string `json:"title" gorm:"not null"`
	AuthorID string `json:"author_id" gorm:"type:uuid;not null;index"`
	Summary  string `json:"summary" gorm:"not null"`
	ISBN     string `json:"isbn" gorm:"column:isbn;not null"`

	// associations
	Author *Author `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT;"`
	Genres []Genre `json:"genres" gorm:"many2many:book_genres;constraint:OnDelete:CASCADE;"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}

func (b Book) URL() string {
	return "/catalog/book/" + b.ID
}

// GenreIDs lists the ids of the attached genres in order.
func (b Book) GenreIDs() []string {
	ids := make([]string, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// HasGenre reports whether the genre id is attached to the book.
func (b Book) HasGenre(id string) bool {
	for _, g := range b.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}
