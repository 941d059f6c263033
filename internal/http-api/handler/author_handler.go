package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/http-api/apperror"
	"locallibrary/internal/http-api/service"
)

type AuthorHandler struct {
	svc service.AuthorService
}

func NewAuthorHandler(svc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/authors", h.List)
	rg.GET("/author/:id", h.Detail)
}

func (h *AuthorHandler) List(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	authors, err := h.svc.List(ctx)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "author_list", gin.H{"title": "Author List", "authors": authors})
}

func (h *AuthorHandler) Detail(c *gin.Context) {
	id, ok := canonicalID(c.Param("id"))
	if !ok {
		_ = c.Error(apperror.NotFound("Author not found"))
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	author, books, err := h.svc.Detail(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		_ = c.Error(apperror.NotFound("Author not found"))
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "author_detail", gin.H{
		"title":  "Author: " + author.Name(),
		"author": author,
		"books":  books,
	})
}
