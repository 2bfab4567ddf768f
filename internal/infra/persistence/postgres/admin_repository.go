package postgres

import (
	"context"

	"blooddonor/internal/domain/entity"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/domain/repository"
	"blooddonor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByID retrieves a single admin by their unique id.
func (repo *adminRepository) FindByID(ctx context.Context, id int64) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).First(&adminM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return toAdminDomain(&adminM), nil
}

// FindByUsername retrieves a single admin by username.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a new admin account.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAdmin.WrapMessage("username already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.Password,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:       data.ID,
		Username: data.Username,
		Password: data.PasswordHash,
	}
}
