package postgres

import (
	"context"

	"activator/internal/domain/entity"
	"activator/internal/domain/repository"
	"activator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
// It returns the repository as a repository.AdminRepository interface, adhering to dependency inversion.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// CreateAdmin persists a new admin account.
func (repo *adminRepository) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdmin
		}

		return errors.Wrap(err, "failed to create admin")
	}

	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// FindAdminByID retrieves an admin by ID.
func (repo *adminRepository) FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindAdminByEmail retrieves an admin by email address.
func (repo *adminRepository) FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *adminRepository) findOne(ctx context.Context, query string, arg any) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	return toAdminDomain(&adminM), nil
}

func toAdminDomain(data *model.AdminModel) *entity.Admin {
	return &entity.Admin{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	return &model.AdminModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
