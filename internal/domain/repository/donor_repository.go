// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"blooddonor/internal/domain/entity"
)

// ErrDonorNotFound is a domain-specific error returned when a donor is not found.
var ErrDonorNotFound = errors.New("donor not found")

// DonorRepository defines the standard operations for donor identity persistence.
// The application layer will depend on this interface, not the concrete implementation.
type DonorRepository interface {
	// FindByID retrieves a single donor by their id within the donor identity set.
	FindByID(ctx context.Context, id int64) (*entity.Donor, error)

	// FindByEmailAndPhone retrieves the donor matching the exact login pair.
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Donor, error)

	// ExistsByEmailOrPhone reports whether any donor already uses the email OR the phone.
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)

	// Create persists a new donor and fills in the generated id and timestamps.
	Create(ctx context.Context, donor *entity.Donor) error

	// Update modifies an existing donor in place.
	Update(ctx context.Context, donor *entity.Donor) error

	// Delete removes a donor by id. Returns ErrDonorNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// ListAll returns every donor, ordered by name.
	ListAll(ctx context.Context) ([]*entity.Donor, error)

	// Search returns donors whose name, email or blood type contains the query.
	Search(ctx context.Context, query string) ([]*entity.Donor, error)
}
