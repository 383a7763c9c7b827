package api

import (
	"net/http"

	"manomangal/internal/gallery"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct{}

func NewGalleryHandler() *GalleryHandler {
	return &GalleryHandler{}
}

func (h *GalleryHandler) Register(router gin.IRouter) {
	router.GET("/gallery", h.list)
}

func (h *GalleryHandler) list(c *gin.Context) {
	category := c.DefaultQuery("category", gallery.CategoryAll)
	c.JSON(http.StatusOK, gin.H{
		"categories": gallery.Categories(),
		"images":     gallery.Filter(category),
	})
}
