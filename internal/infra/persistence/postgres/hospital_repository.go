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

// hospitalRepository implements the domain.HospitalRepository interface using GORM.
type hospitalRepository struct {
	db *gorm.DB
}

// NewHospitalRepository is the constructor for hospitalRepository.
func NewHospitalRepository(db *gorm.DB) repository.HospitalRepository {
	return &hospitalRepository{db: db}
}

// FindByID retrieves a single hospital by its unique id.
func (repo *hospitalRepository) FindByID(ctx context.Context, id int64) (*entity.Hospital, error) {
	var hospitalM model.HospitalModel
	if err := repo.db.WithContext(ctx).First(&hospitalM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHospitalNotFound
		}

		return nil, errors.Wrap(err, "failed to find hospital by id")
	}

	return toHospitalDomain(&hospitalM), nil
}

// FindByEmailAndPhone retrieves the hospital matching the exact login pair.
func (repo *hospitalRepository) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Hospital, error) {
	var hospitalM model.HospitalModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND phone = ?", email, phone).
		First(&hospitalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHospitalNotFound
		}

		return nil, errors.Wrap(err, "failed to find hospital by email and phone")
	}

	return toHospitalDomain(&hospitalM), nil
}

// ExistsByEmailOrPhone reports whether any hospital already uses the email OR the phone.
func (repo *hospitalRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.HospitalModel{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check hospital existence")
	}

	return count > 0, nil
}

// Create persists a new hospital entity to the database.
func (repo *hospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	hospitalM := fromHospitalDomain(hospital)

	if err := repo.db.WithContext(ctx).Create(hospitalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateHospital.WrapMessage("email or phone already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required hospital information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hospital")
	}

	hospital.ID = hospitalM.ID
	hospital.CreatedAt = hospitalM.CreatedAt
	hospital.UpdatedAt = hospitalM.UpdatedAt

	return nil
}

// Update modifies an existing hospital entity in the database.
func (repo *hospitalRepository) Update(ctx context.Context, hospital *entity.Hospital) error {
	hospitalM := fromHospitalDomain(hospital)

	if err := repo.db.WithContext(ctx).Save(hospitalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateHospital.WrapMessage("email or phone already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required hospital information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update hospital")
	}

	hospital.UpdatedAt = hospitalM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toHospitalDomain(data *model.HospitalModel) *entity.Hospital {
	if data == nil {
		return nil
	}

	return &entity.Hospital{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Address:       data.Address,
		ContactPerson: data.ContactPerson,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromHospitalDomain(data *entity.Hospital) *model.HospitalModel {
	if data == nil {
		return nil
	}

	return &model.HospitalModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Address:       data.Address,
		ContactPerson: data.ContactPerson,
		CreatedAt:     data.CreatedAt,
	}
}
