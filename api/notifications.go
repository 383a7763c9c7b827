package api

import (
	"net/http"

	"manomangal/internal/notify"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the booking notification formatter to
// cross-origin callers. It only prepares artifacts; delivery is the
// caller's job.
type NotificationHandler struct {
	formatter *notify.Formatter
}

func NewNotificationHandler(formatter *notify.Formatter) *NotificationHandler {
	return &NotificationHandler{formatter: formatter}
}

func (h *NotificationHandler) Register(router gin.IRouter) {
	router.POST("/notifications/booking", h.prepare)
}

func (h *NotificationHandler) prepare(c *gin.Context) {
	var payload notify.BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		message := err.Error()
		if message == "" {
			message = "Failed to process notification"
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   message,
		})
		return
	}

	c.JSON(http.StatusOK, h.formatter.Format(payload))
}
