package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/bhp-api/internal/pkg/logger"
	"github.com/yourusername/bhp-api/pkg/auth"
)

// Ключи контекста, которые выставляет RequireAuth
const (
	ContextUserID = "user_id"
	ContextClaims = "claims"
)

// AuthMiddleware обеспечивает аутентификацию и проверку ролей для защищенных маршрутов
type AuthMiddleware struct {
	jwtService *auth.JWTService
	log        logger.Logger
}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		log:        log,
	}
}

// RequireAuth проверяет Bearer-токен и кладет claims в контекст
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required", "error_type": "token_missing"})
			c.Abort()
			return
		}

		// Проверяем формат заголовка Bearer {token}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}", "error_type": "token_format"})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ParseToken(parts[1])
		if err != nil {
			m.log.Warn("Invalid token on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "error_type": "token_invalid"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// RequireRoles пропускает запрос, если у пользователя есть хотя бы одна из ролей.
// Должен применяться ПОСЛЕ RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get(ContextClaims)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		claims, ok := raw.(*auth.Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}

		m.log.Warn("User %s without roles %v tried %s %s", claims.UserID, roles, c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role", "required_roles": roles})
		c.Abort()
	}
}
