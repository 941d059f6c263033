package models

// explicit join model for the books<->genres many2many table
type BookGenre struct {
	BookID  string `json:"book_id" gorm:"primaryKey;type:uuid"`
	GenreID string `json:"genre_id" gorm:"primaryKey;type:uuid"`
}

func (BookGenre) TableName() string {
	return "book_genres"
}
