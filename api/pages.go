package api

import (
	"net/http"

	"manomangal/internal/content"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the static copy behind the informational pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) Register(router gin.IRouter) {
	router.GET("/", h.home)
	router.GET("/about", h.about)
}

func (h *PagesHandler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"venue":       content.VenueInfo(),
		"event_types": content.EventTypes(),
	})
}

func (h *PagesHandler) about(c *gin.Context) {
	c.JSON(http.StatusOK, content.AboutInfo())
}
