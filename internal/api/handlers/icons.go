package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kallanseto/crypto-tracker/internal/icons"
)

type IconHandler struct {
	icons *icons.Service
}

func NewIconHandler(iconService *icons.Service) *IconHandler {
	return &IconHandler{
		icons: iconService,
	}
}

// GetIcon serves a coin icon from the proxy cache.
func (h *IconHandler) GetIcon(c *gin.Context) {
	data, contentType, err := h.icons.Icon(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, icons.ErrUnknownCoin) {
			c.JSON(http.StatusNotFound, gin.H{"error": "coin not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentType, data)
}
