package api

import (
	"net/http"

	"manomangal/internal/service/menu"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	service menu.MenuUseCase
}

func NewMenuHandler(service menu.MenuUseCase) *MenuHandler {
	return &MenuHandler{service: service}
}

func (h *MenuHandler) Register(router gin.IRouter) {
	router.GET("/menus", h.list)
}

func (h *MenuHandler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.DefaultQuery("category", menu.CategoryAll))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
