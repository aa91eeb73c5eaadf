package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/bhp-api/internal/pkg/logger"
)

// Pinger проверяет доступность хранилища
type Pinger func(ctx context.Context) error

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	ping Pinger
	log  logger.Logger
}

// NewHealthHandler создает обработчик health-check
func NewHealthHandler(ping Pinger, log logger.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

// Health возвращает 200, если БД отвечает, иначе 503
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Error("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
