// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// donorRepository implements the domain.DonorRepository interface using GORM.
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository is the constructor for donorRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewDonorRepository(db *gorm.DB) repository.DonorRepository {
	return &donorRepository{db: db}
}

// FindByID retrieves a single donor by their unique id.
func (repo *donorRepository) FindByID(ctx context.Context, id int64) (*entity.Donor, error) {
	var donorM model.DonorModel
	if err := repo.db.WithContext(ctx).First(&donorM, id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor by id")
	}

	return toDonorDomain(&donorM), nil
}

// FindByEmailAndPhone retrieves the donor matching the exact login pair.
// Both fields must match; a miss on either yields ErrDonorNotFound so the
// caller can collapse it into a generic invalid-credentials response.
func (repo *donorRepository) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Donor, error) {
	var donorM model.DonorModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND phone = ?", email, phone).
		First(&donorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor by email and phone")
	}

	return toDonorDomain(&donorM), nil
}

// ExistsByEmailOrPhone reports whether any donor already uses the email OR the phone.
func (repo *donorRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check donor existence")
	}

	return count > 0, nil
}

// Create persists a new donor entity to the database.
func (repo *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	donorM := fromDonorDomain(donor)

	if err := repo.db.WithContext(ctx).Create(donorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateDonor.WrapMessage("email or phone already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required donor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donor")
	}

	donor.ID = donorM.ID
	donor.CreatedAt = donorM.CreatedAt
	donor.UpdatedAt = donorM.UpdatedAt

	return nil
}

// Update modifies an existing donor entity in the database.
func (repo *donorRepository) Update(ctx context.Context, donor *entity.Donor) error {
	donorM := fromDonorDomain(donor)

	if err := repo.db.WithContext(ctx).Save(donorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateDonor.WrapMessage("email or phone already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required donor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update donor")
	}

	donor.UpdatedAt = donorM.UpdatedAt

	return nil
}

// Delete removes a donor by id.
func (repo *donorRepository) Delete(ctx context.Context, id int64) error {
	res := repo.db.WithContext(ctx).Delete(&model.DonorModel{}, id)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete donor")
	}
	if res.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

// ListAll returns every donor, ordered by name.
func (repo *donorRepository) ListAll(ctx context.Context) ([]*entity.Donor, error) {
	var donorMs []model.DonorModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&donorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donors")
	}

	return toDonorDomainSlice(donorMs), nil
}

// Search returns donors whose name, email or blood type contains the query.
func (repo *donorRepository) Search(ctx context.Context, query string) ([]*entity.Donor, error) {
	pattern := "%" + query + "%"

	var donorMs []model.DonorModel
	err := repo.db.WithContext(ctx).
		Where("name ILIKE ? OR email ILIKE ? OR blood_type ILIKE ?", pattern, pattern, pattern).
		Order("name").
		Find(&donorMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search donors")
	}

	return toDonorDomainSlice(donorMs), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toDonorDomain(data *model.DonorModel) *entity.Donor {
	if data == nil {
		return nil
	}

	return &entity.Donor{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		BloodType:      entity.BloodType(data.BloodType),
		MedicalHistory: data.MedicalHistory,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDonorDomain(data *entity.Donor) *model.DonorModel {
	if data == nil {
		return nil
	}

	return &model.DonorModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		BloodType:      data.BloodType.String(),
		MedicalHistory: data.MedicalHistory,
		CreatedAt:      data.CreatedAt,
	}
}

func toDonorDomainSlice(models []model.DonorModel) []*entity.Donor {
	donors := make([]*entity.Donor, 0, len(models))
	for i := range models {
		donors = append(donors, toDonorDomain(&models[i]))
	}

	return donors
}
