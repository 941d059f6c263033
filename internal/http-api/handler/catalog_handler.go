package handler

import (
	"github.com/gin-gonic/gin"

	"locallibrary/internal/http-api/apperror"
	"locallibrary/internal/http-api/service"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Index)
}

// Index shows the record counts.
func (h *CatalogHandler) Index(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	counts, err := h.svc.Counts(ctx)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "home", gin.H{
		"title":  "Local Library Home",
		"counts": counts,
	})
}
