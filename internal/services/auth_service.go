package services

import (
	"context"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// Папки удаленного хранилища для пользовательских файлов.
const (
	folderUserProfile = "user_profile"
	folderUserResumes = "user_resumes"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, photo *dto.UploadInput) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	uploadService UploadService
	tokens        *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	uploadService UploadService,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		uploadService: uploadService,
		tokens:        tokens,
	}
}

// Register - регистрация нового пользователя.
// Сначала проверка на дубликат email, потом загрузка фото, потом запись:
// при отказе хранилища в БД ничего не остается.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, photo *dto.UploadInput) error {
	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		return apperrors.ErrInvalidUserRole
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}

	photoURL, err := s.uploadService.Ingest(ctx, photo, folderUserProfile)
	if err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Fullname:     req.Fullname,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hashedPassword,
		Role:         role,
		Profile: models.Profile{
			ProfilePhoto: photoURL,
		},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			// Проиграли гонку двух одновременных регистраций - индекс решает
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", string(role))
	return nil
}

// Login - аутентификация пользователя.
// "Email не найден" и "пароль не подошел" наружу не различаются.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	declaredRole, err := models.ParseUserRole(req.Role)
	if err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if declaredRole != user.Role {
		return nil, apperrors.ErrRoleMismatch
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Хеш не сериализуется (json:"-"), но и в память ответа его не тащим
	user.PasswordHash = ""

	return &dto.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}
