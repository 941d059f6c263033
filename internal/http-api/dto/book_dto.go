package dto

import (
	"locallibrary/internal/http-api/models"
)

// BookForm: POST /catalog/book/create and /catalog/book/:id/update.
// A single checked genre arrives as one value, none at all as an absent field.
type BookForm struct {
	Title   string   `form:"title"`
	Author  string   `form:"author"`
	Summary string   `form:"summary"`
	ISBN    string   `form:"isbn"`
	Genre   []string `form:"genre"`
}

// BookDeleteForm: POST /catalog/book/:id/delete
type BookDeleteForm struct {
	BookID string `form:"bookid"`
}

// BookModel builds the candidate book from sanitised values.
func BookModel(id, title, authorID, summary, isbn string, genreIDs []string) models.Book {
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, gid := range genreIDs {
		genres = append(genres, models.Genre{ID: gid})
	}
	return models.Book{
		ID:       id,
		Title:    title,
		AuthorID: authorID,
		Summary:  summary,
		ISBN:     isbn,
		Genres:   genres,
	}
}

// GenreOption is a genre checkbox in the book form.
type GenreOption struct {
	models.Genre
	Checked bool
}

// GenreOptionsFrom marks the genres attached to b.
func GenreOptionsFrom(genres []models.Genre, b models.Book) []GenreOption {
	out := make([]GenreOption, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreOption{Genre: g, Checked: b.HasGenre(g.ID)})
	}
	return out
}
