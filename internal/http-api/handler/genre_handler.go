package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/http-api/apperror"
	"locallibrary/internal/http-api/service"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/genres", h.List)
	rg.GET("/genre/:id", h.Detail)
}

func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	genres, err := h.svc.List(ctx)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "genre_list", gin.H{"title": "Genre List", "genres": genres})
}

func (h *GenreHandler) Detail(c *gin.Context) {
	id, ok := canonicalID(c.Param("id"))
	if !ok {
		_ = c.Error(apperror.NotFound("Genre not found"))
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	genre, books, err := h.svc.Detail(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		_ = c.Error(apperror.NotFound("Genre not found"))
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "genre_detail", gin.H{
		"title": "Genre: " + genre.Name,
		"genre": genre,
		"books": books,
	})
}
