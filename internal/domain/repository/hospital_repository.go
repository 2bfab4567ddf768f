package repository

import (
	"context"
	"errors"

	"blooddonor/internal/domain/entity"
)

// ErrHospitalNotFound is a domain-specific error returned when a hospital is not found.
var ErrHospitalNotFound = errors.New("hospital not found")

// HospitalRepository defines the standard operations for hospital identity persistence.
type HospitalRepository interface {
	// FindByID retrieves a single hospital by its id within the hospital identity set.
	FindByID(ctx context.Context, id int64) (*entity.Hospital, error)

	// FindByEmailAndPhone retrieves the hospital matching the exact login pair.
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Hospital, error)

	// ExistsByEmailOrPhone reports whether any hospital already uses the email OR the phone.
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)

	// Create persists a new hospital and fills in the generated id and timestamps.
	Create(ctx context.Context, hospital *entity.Hospital) error

	// Update modifies an existing hospital in place.
	Update(ctx context.Context, hospital *entity.Hospital) error
}
