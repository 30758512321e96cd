package handlers

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup, tokens *auth.TokenManager) {
	companies := rg.Group("/companies")
	companies.Use(middleware.AuthMiddleware(tokens))
	{
		companies.POST("", h.RegisterCompany)
		companies.GET("", h.ListCompanies)
		companies.GET("/:id", h.GetCompany)
		companies.PUT("/:id", h.UpdateCompany)
	}
}

// RegisterCompany godoc
// @Summary Создание компании, владельцем становится вызывающий
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /companies [post]
func (h *CompanyHandler) RegisterCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterCompanyRequest
	if err := c.ShouldBind(&req); err != nil || req.CompanyName == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Please enter company name"))
		return
	}

	company, err := h.companyService.Register(c.Request.Context(), userID, req.CompanyName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully",
		"company": company,
		"success": true,
	})
}

// ListCompanies godoc
// @Summary Компании вызывающего пользователя
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"success":   true,
	})
}

// GetCompany godoc
// @Summary Компания по идентификатору
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Company found",
		"company": company,
		"success": true,
	})
}

// UpdateCompany godoc
// @Summary Обновление компании с новым логотипом, только для владельца
// @Accept mpfd
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	logo, err := h.FormFile(c, "file")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if logo == nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("All fields are required"))
		return
	}
	defer CloseUpload(logo)

	company, err := h.companyService.Update(c.Request.Context(), userID, c.Param("id"), &req, logo)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Company information updated.",
		"company": company,
		"success": true,
	})
}
