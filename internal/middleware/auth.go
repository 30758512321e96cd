package middleware

import (
	"jobportal_backend/internal/auth"
	"jobportal_backend/pkg/apperrors"
	"jobportal_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// TokenCookieName - имя cookie с сессионным токеном.
const TokenCookieName = "token"

// AuthMiddleware - гейт аутентификации: единственная обязательная
// проверка перед любой защищенной операцией.
// Нет cookie -> 401, невалидный или просроченный токен -> 403.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(TokenCookieName)
		if err != nil || tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		userID, err := tokens.Parse(tokenStr)
		if err != nil {
			// Просроченный и подделанный токены снаружи неразличимы
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		// Identity уходит вниз явно: в gin-контекст для хендлеров
		// и в request context для сервисов и логгера.
		c.Set("userID", userID)
		ctx := contextkeys.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
