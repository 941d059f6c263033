package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/http-api/apperror"
	"locallibrary/internal/http-api/service"
)

type InstanceHandler struct {
	svc service.InstanceService
}

func NewInstanceHandler(svc service.InstanceService) *InstanceHandler {
	return &InstanceHandler{svc: svc}
}

func (h *InstanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookinstances", h.List)
	rg.GET("/bookinstance/:id", h.Detail)
}

func (h *InstanceHandler) List(c *gin.Context) {
	ctx, cancel := withTimeout(c)
	defer cancel()

	instances, err := h.svc.List(ctx)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "bookinstance_list", gin.H{"title": "Book Instance List", "instances": instances})
}

func (h *InstanceHandler) Detail(c *gin.Context) {
	id, ok := canonicalID(c.Param("id"))
	if !ok {
		_ = c.Error(apperror.NotFound("Book copy not found"))
		return
	}

	ctx, cancel := withTimeout(c)
	defer cancel()

	instance, err := h.svc.Get(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		_ = c.Error(apperror.NotFound("Book copy not found"))
		return
	}
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}
	render(c, "bookinstance_detail", gin.H{
		"title":    "Copy: " + instance.ID,
		"instance": instance,
	})
}
