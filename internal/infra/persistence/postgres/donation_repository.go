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

// donationRepository implements the domain.DonationRepository interface using GORM.
// The donations table is append-only; there are no update paths.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

// Create appends a new donation record.
func (repo *donationRepository) Create(ctx context.Context, record *entity.DonationRecord) error {
	recordM := fromDonationDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid donor or hospital reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required donation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// ListByDonor returns the donor's donation history, newest first.
func (repo *donationRepository) ListByDonor(ctx context.Context, donorID int64) ([]*entity.DonationRecord, error) {
	var recordMs []model.DonationModel
	err := repo.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("donated_at DESC").
		Find(&recordMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations by donor")
	}

	return toDonationDomainSlice(recordMs), nil
}

// ListByHospital returns the hospital's recorded donations, newest first.
func (repo *donationRepository) ListByHospital(ctx context.Context, hospitalID int64) ([]*entity.DonationRecord, error) {
	var recordMs []model.DonationModel
	err := repo.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("donated_at DESC").
		Find(&recordMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations by hospital")
	}

	return toDonationDomainSlice(recordMs), nil
}

// --- Mapper Functions ---

func toDonationDomain(data *model.DonationModel) *entity.DonationRecord {
	if data == nil {
		return nil
	}

	return &entity.DonationRecord{
		ID:         data.ID,
		HospitalID: data.HospitalID,
		DonorID:    data.DonorID,
		BloodType:  entity.BloodType(data.BloodType),
		QuantityML: data.QuantityML,
		DonatedAt:  data.DonatedAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromDonationDomain(data *entity.DonationRecord) *model.DonationModel {
	if data == nil {
		return nil
	}

	return &model.DonationModel{
		ID:         data.ID,
		HospitalID: data.HospitalID,
		DonorID:    data.DonorID,
		BloodType:  data.BloodType.String(),
		QuantityML: data.QuantityML,
		DonatedAt:  data.DonatedAt,
	}
}

func toDonationDomainSlice(models []model.DonationModel) []*entity.DonationRecord {
	records := make([]*entity.DonationRecord, 0, len(models))
	for i := range models {
		records = append(records, toDonationDomain(&models[i]))
	}

	return records
}
