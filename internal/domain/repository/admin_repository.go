package repository

import (
	"context"
	"errors"

	"blooddonor/internal/domain/entity"
)

// ErrAdminNotFound is a domain-specific error returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for administrator persistence.
type AdminRepository interface {
	// FindByID retrieves a single admin by id within the admin identity set.
	FindByID(ctx context.Context, id int64) (*entity.Admin, error)

	// FindByUsername retrieves a single admin by username.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// Create persists a new admin and fills in the generated id.
	Create(ctx context.Context, admin *entity.Admin) error
}
