package usecase

import (
	"context"

	"blooddonor/internal/domain/entity"
)

// AdminLoginInput defines the username/password pair an admin logs in with.
type AdminLoginInput struct {
	Username string
	Password string
}

// AdminAccount is the admin view exposed to the delivery layer.
// It deliberately omits the password hash.
type AdminAccount struct {
	ID       int64
	Username string
}

// AdminLoginOutput returns the session token and admin account after a
// successful login.
type AdminLoginOutput struct {
	Token string
	Admin *AdminAccount
}

// AdminUpdateDonorInput defines the donor fields an admin may rewrite.
type AdminUpdateDonorInput struct {
	DonorID        int64
	Name           string
	BloodType      string
	MedicalHistory string
}

// AdminDonorDetailOutput returns a donor together with their donation history.
type AdminDonorDetailOutput struct {
	Donor     *entity.Donor
	Donations []*entity.DonationRecord
}

// AdminUsecase defines the interface for administrator business operations.
// Every operation except Login and EnsureDefaultAdmin assumes the caller has
// already been authenticated as an admin by the delivery layer.
type AdminUsecase interface {
	Login(ctx context.Context, input *AdminLoginInput) (*AdminLoginOutput, error)
	ListDonors(ctx context.Context) ([]*entity.Donor, error)
	SearchDonors(ctx context.Context, query string) ([]*entity.Donor, error)
	GetDonor(ctx context.Context, donorID int64) (*AdminDonorDetailOutput, error)
	UpdateDonor(ctx context.Context, input *AdminUpdateDonorInput) (*entity.Donor, error)
	DeleteDonor(ctx context.Context, donorID int64) error

	// EnsureDefaultAdmin creates the configured bootstrap admin account on
	// startup when it does not exist yet.
	EnsureDefaultAdmin(ctx context.Context, username, password string) error
}
