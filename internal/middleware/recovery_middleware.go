package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/bhp-api/internal/pkg/logger"
)

// InternalErrorMessage - единственное, что клиент видит при внутренней ошибке
const InternalErrorMessage = "Something went wrong. Please contact the administrator."

// Recovery превращает панику обработчика в 500 с общим сообщением
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": InternalErrorMessage})
	})
}
