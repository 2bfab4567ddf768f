package usecase

import (
	"context"

	"blooddonor/internal/domain/entity"
)

// RegisterHospitalInput defines the data required to register a new hospital.
type RegisterHospitalInput struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
}

// HospitalLoginInput defines the email/phone pair a hospital logs in with.
type HospitalLoginInput struct {
	Email string
	Phone string
}

// UpdateHospitalProfileInput defines the mutable hospital profile fields.
// Email is fixed at registration; the phone may change but remains bound
// by the login pair uniqueness rule.
type UpdateHospitalProfileInput struct {
	HospitalID    int64
	Name          string
	Phone         string
	Address       string
	ContactPerson string
}

// HospitalSessionOutput returns the session token and hospital after a
// successful registration or login.
type HospitalSessionOutput struct {
	Token    string
	Hospital *entity.Hospital
}

// HospitalUsecase defines the interface for hospital-related business operations.
type HospitalUsecase interface {
	Register(ctx context.Context, input *RegisterHospitalInput) (*HospitalSessionOutput, error)
	Login(ctx context.Context, input *HospitalLoginInput) (*HospitalSessionOutput, error)
	GetProfile(ctx context.Context, hospitalID int64) (*entity.Hospital, error)
	UpdateProfile(ctx context.Context, input *UpdateHospitalProfileInput) (*entity.Hospital, error)
}
