package postgres

import (
	"context"
	"time"

	"blooddonor/internal/domain/entity"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/domain/repository"
	"blooddonor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inventoryRepository implements the domain.InventoryRepository interface using GORM.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// AddQuantity atomically increments the stored quantity for a (hospital, blood type)
// bucket, inserting the row if it does not exist yet. The increment runs as a
// single conditional upsert so concurrent donations never lose updates.
func (repo *inventoryRepository) AddQuantity(ctx context.Context, hospitalID int64, bloodType entity.BloodType, quantityML int) error {
	now := time.Now()
	entry := model.InventoryModel{
		HospitalID:  hospitalID,
		BloodType:   bloodType.String(),
		QuantityML:  quantityML,
		LastUpdated: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "hospital_id"}, {Name: "blood_type"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity_ml":  gorm.Expr("blood_inventory.quantity_ml + EXCLUDED.quantity_ml"),
				"last_updated": now,
			}),
		}).
		Create(&entry).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid hospital reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert inventory quantity")
	}

	return nil
}

// ListByHospital returns the hospital's inventory buckets ordered by blood type.
func (repo *inventoryRepository) ListByHospital(ctx context.Context, hospitalID int64) ([]*entity.InventoryEntry, error) {
	var entryMs []model.InventoryModel
	err := repo.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("blood_type ASC").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory by hospital")
	}

	entries := make([]*entity.InventoryEntry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toInventoryDomain(&entryMs[i]))
	}

	return entries, nil
}

func toInventoryDomain(data *model.InventoryModel) *entity.InventoryEntry {
	if data == nil {
		return nil
	}

	return &entity.InventoryEntry{
		HospitalID:  data.HospitalID,
		BloodType:   entity.BloodType(data.BloodType),
		QuantityML:  data.QuantityML,
		LastUpdated: data.LastUpdated,
	}
}
