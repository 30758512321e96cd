package handlers

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, tokens *auth.TokenManager) {
	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/profile/update", h.UpdateProfile)
		protected.POST("/profile_picture/update", h.UpdateProfilePhoto)
	}
}

// UpdateProfile godoc
// @Summary Частичное обновление собственного профиля, опционально с резюме
// @Accept mpfd
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /profile/update [post]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resume, err := h.FormFile(c, "file")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer CloseUpload(resume)

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
		"success": true,
	})
}

// UpdateProfilePhoto godoc
// @Summary Замена фотографии профиля
// @Accept mpfd
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /profile_picture/update [post]
func (h *ProfileHandler) UpdateProfilePhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	photo, err := h.FormFile(c, "file")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer CloseUpload(photo)

	user, err := h.profileService.UpdateProfilePhoto(c.Request.Context(), userID, photo)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile Picture updated successfully",
		"user":    user,
		"success": true,
	})
}
