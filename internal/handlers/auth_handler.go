package handlers

import (
	"fmt"
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	tokens      *auth.TokenManager
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		tokens:      tokens,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации.
// Register и Login по построению идут мимо гейта: identity еще нет.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/logout", h.Logout)
}

// Register godoc
// @Summary Регистрация аккаунта с фотографией профиля
// @Accept mpfd
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	photo, err := h.FormFile(c, "file")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if photo == nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("All fields are required"))
		return
	}
	defer CloseUpload(photo)

	if err := h.authService.Register(c.Request.Context(), &req, photo); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"success": true,
	})
}

// Login godoc
// @Summary Вход по email, паролю и заявленной роли
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, response.Token, int(h.tokens.TTL().Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome, %s! You are now logged in as a %s.",
			response.User.Fullname, response.User.Role),
		"user":    response.User,
		"success": true,
	})
}

// Logout godoc
// @Summary Выход: сброс cookie сессии
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Состояния сессии на сервере нет, достаточно убить cookie
	h.setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
		"success": true,
	})
}

// setSessionCookie выставляет cookie сессии: httpOnly + secure +
// SameSite=None, потому что фронтенд живет на другом origin.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", true, true)
}
