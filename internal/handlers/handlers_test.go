package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Стабы сервисов: каждый тест задает только нужное поведение.

type stubAuthService struct {
	registerFn func(ctx context.Context, req *dto.RegisterRequest, photo *dto.UploadInput) error
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest, photo *dto.UploadInput) error {
	return s.registerFn(ctx, req, photo)
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginFn(ctx, req)
}

type stubProfileService struct {
	updateFn      func(ctx context.Context, userID string, req *dto.UpdateProfileRequest, resume *dto.UploadInput) (*models.User, error)
	updatePhotoFn func(ctx context.Context, userID string, photo *dto.UploadInput) (*models.User, error)
}

func (s *stubProfileService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, resume *dto.UploadInput) (*models.User, error) {
	return s.updateFn(ctx, userID, req, resume)
}

func (s *stubProfileService) UpdateProfilePhoto(ctx context.Context, userID string, photo *dto.UploadInput) (*models.User, error) {
	return s.updatePhotoFn(ctx, userID, photo)
}

type stubCompanyService struct {
	registerFn func(ctx context.Context, ownerID, companyName string) (*models.Company, error)
	listFn     func(ctx context.Context, ownerID string) ([]models.Company, error)
	getFn      func(ctx context.Context, companyID string) (*models.Company, error)
	updateFn   func(ctx context.Context, callerID, companyID string, req *dto.UpdateCompanyRequest, logo *dto.UploadInput) (*models.Company, error)
}

func (s *stubCompanyService) Register(ctx context.Context, ownerID, companyName string) (*models.Company, error) {
	return s.registerFn(ctx, ownerID, companyName)
}

func (s *stubCompanyService) ListByOwner(ctx context.Context, ownerID string) ([]models.Company, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubCompanyService) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	return s.getFn(ctx, companyID)
}

func (s *stubCompanyService) Update(ctx context.Context, callerID, companyID string, req *dto.UpdateCompanyRequest, logo *dto.UploadInput) (*models.Company, error) {
	return s.updateFn(ctx, callerID, companyID, req, logo)
}

func newTestBase() *BaseHandler {
	gin.SetMode(gin.TestMode)
	return NewBaseHandler(validator.New())
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 24*time.Hour)
}

// multipartForm собирает multipart-тело с полями и опциональным файлом
func multipartForm(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// sessionCookie выдает валидный cookie сессии для защищенных маршрутов
func sessionCookie(t *testing.T, tokens *auth.TokenManager, userID string) *http.Cookie {
	t.Helper()
	token, err := tokens.Issue(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
