package repository

import (
	"context"

	"blooddonor/internal/domain/entity"
)

// DonationRepository defines the append-only operations for the donation log.
type DonationRepository interface {
	// Create appends a new donation record and fills in the generated id.
	// Records are immutable once created; there are no update operations.
	Create(ctx context.Context, record *entity.DonationRecord) error

	// ListByDonor returns the donor's donation history, newest first.
	ListByDonor(ctx context.Context, donorID int64) ([]*entity.DonationRecord, error)

	// ListByHospital returns the hospital's recorded donations, newest first.
	ListByHospital(ctx context.Context, hospitalID int64) ([]*entity.DonationRecord, error)
}

// InventoryRepository defines the operations on the per-hospital blood inventory.
type InventoryRepository interface {
	// AddQuantity atomically upserts the (hospitalID, bloodType) entry:
	// absent entries are created with the given quantity, existing entries are
	// incremented. The upsert must be a single conditional statement so that
	// concurrent additions for the same pair never lose an update.
	AddQuantity(ctx context.Context, hospitalID int64, bloodType entity.BloodType, quantityML int) error

	// ListByHospital returns all inventory entries of one hospital, ordered by blood type.
	ListByHospital(ctx context.Context, hospitalID int64) ([]*entity.InventoryEntry, error)
}
