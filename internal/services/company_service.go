package services

import (
	"context"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

const folderCompanyLogo = "company_logo"

type CompanyService interface {
	Register(ctx context.Context, ownerID, companyName string) (*models.Company, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Company, error)
	GetByID(ctx context.Context, companyID string) (*models.Company, error)
	Update(ctx context.Context, callerID, companyID string, req *dto.UpdateCompanyRequest, logo *dto.UploadInput) (*models.Company, error)
}

type CompanyServiceImpl struct {
	companyRepo   repositories.CompanyRepository
	uploadService UploadService
}

func NewCompanyService(companyRepo repositories.CompanyRepository, uploadService UploadService) CompanyService {
	return &CompanyServiceImpl{
		companyRepo:   companyRepo,
		uploadService: uploadService,
	}
}

// Register - создание компании. Имя уникально глобально,
// владельцем становится вызывающий пользователь.
func (s *CompanyServiceImpl) Register(ctx context.Context, ownerID, companyName string) (*models.Company, error) {
	if _, err := s.companyRepo.FindByName(ctx, companyName); err == nil {
		return nil, apperrors.ErrCompanyAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.InternalError(err)
	}

	company := &models.Company{
		Name:   companyName,
		UserID: ownerID,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrCompanyAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "company registered", "company_id", company.ID, "owner_id", ownerID)
	return company, nil
}

// ListByOwner возвращает компании вызывающего пользователя, не весь список.
func (s *CompanyServiceImpl) ListByOwner(ctx context.Context, ownerID string) ([]models.Company, error) {
	companies, err := s.companyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

// GetByID - чтение по идентификатору. Владение на чтении не проверяется.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// Update - полное обновление компании с новым логотипом.
// Мутация разрешена только владельцу: чужая компания дает 403.
func (s *CompanyServiceImpl) Update(ctx context.Context, callerID, companyID string, req *dto.UpdateCompanyRequest, logo *dto.UploadInput) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyMissingOnUpdate
		}
		return nil, apperrors.InternalError(err)
	}

	if company.UserID != callerID {
		logger.CtxWarn(ctx, "company update denied: caller is not the owner",
			"company_id", companyID, "caller_id", callerID)
		return nil, apperrors.ErrForbidden
	}

	logoURL, err := s.uploadService.Ingest(ctx, logo, folderCompanyLogo)
	if err != nil {
		return nil, err
	}

	company.Name = req.Name
	company.Description = req.Description
	company.Website = req.Website
	company.Location = req.Location
	company.Logo = logoURL

	if err := s.companyRepo.Update(ctx, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrCompanyAlreadyExists
		}
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyMissingOnUpdate
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "company updated", "company_id", companyID)
	return company, nil
}
