package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kallanseto/crypto-tracker/internal/notify"
)

type NotificationHandler struct {
	center *notify.Center
}

func NewNotificationHandler(center *notify.Center) *NotificationHandler {
	return &NotificationHandler{
		center: center,
	}
}

// GetNotifications returns the active (unexpired) error banners.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.center.Active()})
}

// DismissNotification removes a banner before its timeout.
func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	h.center.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}
