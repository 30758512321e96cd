package services

import (
	"context"
	"strings"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

// ProfileService обновляет профиль ТОЛЬКО вызывающего пользователя:
// целевой identity-параметр отсутствует по построению.
type ProfileService interface {
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, resume *dto.UploadInput) (*models.User, error)
	UpdateProfilePhoto(ctx context.Context, userID string, photo *dto.UploadInput) (*models.User, error)
}

type ProfileServiceImpl struct {
	userRepo      repositories.UserRepository
	uploadService UploadService
}

func NewProfileService(userRepo repositories.UserRepository, uploadService UploadService) ProfileService {
	return &ProfileServiceImpl{
		userRepo:      userRepo,
		uploadService: uploadService,
	}
}

// UpdateProfile - частичное обновление профиля.
// Загрузка резюме идет до записи в БД: упавший аплоад не оставляет
// наполовину обновленного пользователя.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, resume *dto.UploadInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var resumeURL string
	if resume != nil {
		resumeURL, err = s.uploadService.Ingest(ctx, resume, folderUserResumes)
		if err != nil {
			return nil, err
		}
	}

	if req.Fullname != "" {
		user.Fullname = req.Fullname
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Bio != "" {
		user.Profile.Bio = req.Bio
	}
	if req.Skills != "" {
		user.Profile.Skills = splitSkills(req.Skills)
	}
	if req.Role != "" {
		role, err := models.ParseUserRole(req.Role)
		if err != nil {
			return nil, apperrors.ErrInvalidUserRole
		}
		user.Role = role
	}

	if resumeURL != "" {
		user.Profile.Resume = resumeURL
		user.Profile.ResumeOriginalName = resume.FileName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", userID)

	user.PasswordHash = ""
	return user, nil
}

// UpdateProfilePhoto - замена фотографии профиля.
func (s *ProfileServiceImpl) UpdateProfilePhoto(ctx context.Context, userID string, photo *dto.UploadInput) (*models.User, error) {
	if photo == nil {
		return nil, apperrors.NewBadRequestError("Image not selected for upload")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	photoURL, err := s.uploadService.Ingest(ctx, photo, folderUserProfile)
	if err != nil {
		return nil, err
	}

	user.Profile.ProfilePhoto = photoURL

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.PasswordHash = ""
	return user, nil
}

// splitSkills разбирает навыки из строки с разделителем-запятой.
func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
