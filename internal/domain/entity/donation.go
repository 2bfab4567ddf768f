package entity

import "time"

// DonationRecord is an immutable log entry of one donation event.
// Records are append-only; the inventory ledger derives from them.
type DonationRecord struct {
	ID         int64
	HospitalID int64
	DonorID    int64
	BloodType  BloodType
	QuantityML int       // Donated volume in milliliters.
	DonatedAt  time.Time // Date of the donation event.
	CreatedAt  time.Time
}

// InventoryEntry is the aggregate available quantity of one blood type at
// one hospital, keyed uniquely by (HospitalID, BloodType). It equals the sum
// of all donation quantities for the pair and is only ever mutated through
// the atomic record-donation operation.
type InventoryEntry struct {
	HospitalID  int64
	BloodType   BloodType
	QuantityML  int
	LastUpdated time.Time
}
