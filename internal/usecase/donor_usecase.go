// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blooddonor/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterDonorInput defines the data required to register a new donor.
type RegisterDonorInput struct {
	Name           string
	Email          string
	Phone          string
	BloodType      string
	MedicalHistory string
}

// DonorLoginInput defines the email/phone pair a donor logs in with.
type DonorLoginInput struct {
	Email string
	Phone string
}

// UpdateDonorProfileInput defines the mutable donor profile fields.
// Email and blood type are fixed at registration; changing the phone is
// allowed but keeps the uniqueness rule of the login pair.
type UpdateDonorProfileInput struct {
	DonorID        int64
	Name           string
	Phone          string
	MedicalHistory string
}

// --- Output DTOs ---

// DonorSessionOutput returns the session token and donor after a
// successful registration or login.
type DonorSessionOutput struct {
	Token string
	Donor *entity.Donor
}

// DonorProfileOutput returns a donor together with their donation history.
type DonorProfileOutput struct {
	Donor     *entity.Donor
	Donations []*entity.DonationRecord
}

// DonorUsecase defines the interface for donor-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type DonorUsecase interface {
	Register(ctx context.Context, input *RegisterDonorInput) (*DonorSessionOutput, error)
	Login(ctx context.Context, input *DonorLoginInput) (*DonorSessionOutput, error)
	GetProfile(ctx context.Context, donorID int64) (*DonorProfileOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateDonorProfileInput) (*entity.Donor, error)
	ListDonations(ctx context.Context, donorID int64) ([]*entity.DonationRecord, error)
}
