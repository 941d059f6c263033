package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/http-api/apperror"
	"locallibrary/internal/http-api/dto"
	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"
	"locallibrary/internal/http-api/validation"
	"locallibrary/internal/metrics"
)

const bookListURL = "/catalog/books"

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", h.List)

	rg.GET("/book/create", middleware.RequireLogin(), h.CreateForm)
	rg.POST("/book/create", middleware.RequireLogin(), h.Create)

	rg.GET("/book/:id", h.Detail)
	rg.GET("/book/:id/update", middleware.RequireLogin(), h.UpdateForm)
	rg.POST("/book/:id/update", middleware.RequireLogin(), h.Update)
	rg.GET("/book/:id/delete", middleware.RequireAdmin(), h.DeleteForm)
	rg.POST("/book/:id/delete", middleware.RequireAdmin(), h.Delete)
}

func (h *BookHandler) List(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	books, err := h.svc.List(ctx)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "book_list", gin.H{"title": "Book List", "books": books})
}

func (h *BookHandler) Detail(c *gin.Context) {
	id, ok := canonicalID(c.Param("id"))
	if !ok {
		_ = c.Error(apperror.NotFound("Book not found"))
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	book, instances, err := h.svc.Detail(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		_ = c.Error(apperror.NotFound("Book not found"))
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "book_detail", gin.H{
		"title":     book.Title,
		"book":      book,
		"instances": instances,
	})
}

func (h *BookHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, "Create Book", models.Book{}, nil)
}

func (h *BookHandler) Create(c *gin.Context) {
	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(apperror.BadRequest("Malformed book form"))
		return
	}

	f, violations := validation.CheckBook(form.Title, form.Author, form.Summary, form.ISBN, form.Genre, true)
	book := dto.BookModel("", f.Title, f.AuthorID, f.Summary, f.ISBN, f.GenreIDs)
	if len(violations) > 0 {
		metrics.RecordWrite("book", "create", "invalid")
		h.renderForm(c, "Create Book", book, violations)
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	err := h.svc.Create(ctx, &book)
	if v := referenceViolations(err); len(v) > 0 {
		metrics.RecordWrite("book", "create", "invalid")
		h.renderForm(c, "Create Book", book, v)
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	metrics.RecordWrite("book", "create", "ok")
	c.Redirect(http.StatusFound, book.URL())
}

func (h *BookHandler) UpdateForm(c *gin.Context) {
	id, ok := canonicalID(c.Param("id"))
	if !ok {
		_ = c.Error(apperror.NotFound("Book not found"))
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	book, err := h.svc.Get(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		_ = c.Error(apperror.NotFound("Book not found"))
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	h.renderForm(c, "Update Book", *book, nil)
}

// Update replaces the book named by the path id.
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := canonicalID(c.Param("id"))
	if !ok {
		_ = c.Error(apperror.NotFound("Book not found"))
		return
	}

	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(apperror.BadRequest("Malformed book form"))
		return
	}

	f, violations := validation.CheckBook(form.Title, form.Author, form.Summary, form.ISBN, form.Genre, false)
	book := dto.BookModel(id, f.Title, f.AuthorID, f.Summary, f.ISBN, f.GenreIDs)
	if len(violations) > 0 {
		metrics.RecordWrite("book", "update", "invalid")
		h.renderForm(c, "Update Book", book, violations)
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	err := h.svc.Update(ctx, &book)
	if v := referenceViolations(err); len(v) > 0 {
		metrics.RecordWrite("book", "update", "invalid")
		h.renderForm(c, "Update Book", book, v)
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		_ = c.Error(apperror.NotFound("Book not found"))
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	metrics.RecordWrite("book", "update", "ok")
	c.Redirect(http.StatusFound, book.URL())
}

// DeleteForm asks for confirmation. A missing book quietly goes back to the list.
func (h *BookHandler) DeleteForm(c *gin.Context) {
	id, ok := canonicalID(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusFound, bookListURL)
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	book, instances, err := h.svc.Detail(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		c.Redirect(http.StatusFound, bookListURL)
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	h.renderDelete(c, book, instances, "")
}

// Delete removes the book named by the path id. A submitted bookid must agree
// with it. Books that still have copies are kept.
func (h *BookHandler) Delete(c *gin.Context) {
	pathID := c.Param("id")

	var form dto.BookDeleteForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(apperror.BadRequest("Malformed delete form"))
		return
	}
	if form.BookID != "" && !sameID(form.BookID, pathID) {
		_ = c.Error(apperror.BadRequest("Book id does not match the address"))
		return
	}
	id, ok := canonicalID(pathID)
	if !ok {
		c.Redirect(http.StatusFound, bookListURL)
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	err := h.svc.Delete(ctx, id)
	switch {
	case err == nil:
		metrics.RecordWrite("book", "delete", "ok")
		c.Redirect(http.StatusFound, bookListURL)
	case errors.Is(err, service.ErrNotFound):
		c.Redirect(http.StatusFound, bookListURL)
	case errors.Is(err, service.ErrBookHasCopies):
		metrics.RecordWrite("book", "delete", "blocked")
		book, instances, derr := h.svc.Detail(ctx, id)
		if errors.Is(derr, service.ErrNotFound) {
			c.Redirect(http.StatusFound, bookListURL)
			return
		}
		if derr != nil {
			_ = c.Error(apperror.Internal(derr))
			return
		}
		h.renderDelete(c, book, instances, "This book still has copies and was not deleted.")
	default:
		_ = c.Error(apperror.Internal(err))
	}
}

func (h *BookHandler) renderDelete(c *gin.Context, book *models.Book, instances []models.BookInstance, message string) {
	render(c, "book_delete", gin.H{
		"title":     "Delete Book",
		"book":      book,
		"instances": instances,
		"message":   message,
	})
}

// renderForm shows the book form with fresh author and genre choices.
func (h *BookHandler) renderForm(c *gin.Context, title string, book models.Book, violations []validation.Violation) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	authors, genres, err := h.svc.FormOptions(ctx)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "book_form", gin.H{
		"title":   title,
		"authors": authors,
		"genres":  dto.GenreOptionsFrom(genres, book),
		"book":    book,
		"errors":  violations,
	})
}

func referenceViolations(err error) []validation.Violation {
	var out []validation.Violation
	if errors.Is(err, service.ErrUnknownAuthor) {
		out = append(out, validation.Violation{Field: "author", Msg: "Author does not exist."})
	}
	if errors.Is(err, service.ErrUnknownGenre) {
		out = append(out, validation.Violation{Field: "genre", Msg: "Genre does not exist."})
	}
	return out
}
