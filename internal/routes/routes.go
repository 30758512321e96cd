package routes

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Маршруты смонтированы в корне: /register, /login, /profile/*, /companies/*.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	root := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.ProfileHandler.RegisterRoutes(root, tokens)
		appHandlers.CompanyHandler.RegisterRoutes(root, tokens)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
