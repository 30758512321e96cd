package repositories

import (
	"context"
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
)

type CompanyRepository interface {
	FindByID(ctx context.Context, id string) (*models.Company, error)
	FindByName(ctx context.Context, name string) (*models.Company, error)
	FindByOwner(ctx context.Context, userID string) ([]models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindByOwner возвращает компании, которыми владеет пользователь.
// Пустой результат - это []. nil сериализуется в null и ломает клиентов.
func (r *CompanyRepositoryImpl) FindByOwner(ctx context.Context, userID string) ([]models.Company, error) {
	companies := []models.Company{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&companies).Error
	return companies, err
}

// Create сохраняет новую компанию. Глобальную уникальность имени
// держит uniqueIndex в БД.
func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *models.Company) error {
	err := r.db.WithContext(ctx).Create(company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *models.Company) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", company.ID).
		Select("name", "description", "website", "location", "logo").
		Updates(company)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrCompanyAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
