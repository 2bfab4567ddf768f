package usecase

import (
	"context"
	"time"

	"blooddonor/internal/domain/entity"
)

// RecordDonationInput defines the data a hospital submits when recording a
// donation event. HospitalID comes from the authenticated session, never
// from the request body.
type RecordDonationInput struct {
	HospitalID int64
	DonorID    int64
	BloodType  string
	QuantityML int
	DonatedAt  time.Time
}

// RecordDonationOutput returns the appended record and the inventory entry
// it was folded into.
type RecordDonationOutput struct {
	Record    *entity.DonationRecord
	Inventory *entity.InventoryEntry
}

// InventoryUsecase defines the interface for donation recording and
// inventory queries.
type InventoryUsecase interface {
	// RecordDonation atomically appends a donation record and increments the
	// matching inventory bucket. Either both writes happen or neither does.
	RecordDonation(ctx context.Context, input *RecordDonationInput) (*RecordDonationOutput, error)

	// ListInventory returns the hospital's current inventory, ordered by blood type.
	ListInventory(ctx context.Context, hospitalID int64) ([]*entity.InventoryEntry, error)

	// ListHospitalDonations returns all donations recorded by the hospital, newest first.
	ListHospitalDonations(ctx context.Context, hospitalID int64) ([]*entity.DonationRecord, error)
}
