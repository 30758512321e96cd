package services

import (
	"context"
	"fmt"
	"sync"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
)

// In-memory заменители репозиториев и аплоадера: сервисы тестируются
// без Postgres и без внешнего хранилища.

type memUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User // по ID
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type memCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*models.Company
	nextID    int
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[string]*models.Company)}
}

func (r *memCompanyRepo) FindByID(_ context.Context, id string) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *memCompanyRepo) FindByName(_ context.Context, name string) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *memCompanyRepo) FindByOwner(_ context.Context, userID string) ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Контракт репозитория: пустой результат это [], не nil
	out := []models.Company{}
	for _, c := range r.companies {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCompanyRepo) Create(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Name == company.Name {
			return repositories.ErrCompanyAlreadyExists
		}
	}
	if company.ID == "" {
		r.nextID++
		company.ID = fmt.Sprintf("company-%d", r.nextID)
	}
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *memCompanyRepo) Update(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[company.ID]; !ok {
		return repositories.ErrCompanyNotFound
	}
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

// mockUploader подменяет пайплайн загрузок: запоминает вызовы и отдает
// детерминированный URL. failWith имитирует отказ хранилища.
type mockUploader struct {
	mu       sync.Mutex
	calls    []string // папки в порядке вызовов
	failWith error
}

func (m *mockUploader) Ingest(_ context.Context, file *dto.UploadInput, folder string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if file == nil {
		return "", nil
	}
	if m.failWith != nil {
		return "", m.failWith
	}
	m.calls = append(m.calls, folder)
	return "https://cdn.test/" + folder + "/" + file.FileName, nil
}

func (m *mockUploader) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
