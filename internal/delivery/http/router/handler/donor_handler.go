// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "blooddonor/internal/delivery/context"
	"blooddonor/internal/delivery/http/response"
	"blooddonor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DonorHandler holds dependencies for donor-related handlers.
type DonorHandler struct {
	uc     usecase.DonorUsecase
	logger *slog.Logger
}

// NewDonorHandler is the constructor for DonorHandler, injected by Fx.
func NewDonorHandler(uc usecase.DonorUsecase, logger *slog.Logger) *DonorHandler {
	return &DonorHandler{uc: uc, logger: logger}
}

type registerDonorRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	BloodType      string `json:"blood_type" validate:"required"`
	MedicalHistory string `json:"medical_history"`
}

type donorLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type updateDonorProfileRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	MedicalHistory string `json:"medical_history"`
}

type donorSessionResponse struct {
	Token string     `json:"token"`
	Donor *donorView `json:"donor"`
}

type donorProfileResponse struct {
	Donor     *donorView      `json:"donor"`
	Donations []*donationView `json:"donations"`
}

// Register handles the donor registration request. A successful registration
// doubles as login: the response carries a ready-to-use session token.
func (h *DonorHandler) Register(c echo.Context) error {
	var req registerDonorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterDonorInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		BloodType:      req.BloodType,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, donorSessionResponse{
		Token: output.Token,
		Donor: newDonorView(output.Donor),
	}, "Donor registered successfully")
}

// Login handles the donor login request.
func (h *DonorHandler) Login(c echo.Context) error {
	var req donorLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.DonorLoginInput{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donorSessionResponse{
		Token: output.Token,
		Donor: newDonorView(output.Donor),
	}, "Login successful")
}

// GetProfile returns the authenticated donor's profile and donation history.
func (h *DonorHandler) GetProfile(c echo.Context) error {
	donorID := deliverycontext.GetSubjectID(c)

	output, err := h.uc.GetProfile(c.Request().Context(), donorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donorProfileResponse{
		Donor:     newDonorView(output.Donor),
		Donations: newDonationViews(output.Donations),
	}, "Profile retrieved successfully")
}

// UpdateProfile rewrites the authenticated donor's mutable profile fields.
func (h *DonorHandler) UpdateProfile(c echo.Context) error {
	var req updateDonorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	donor, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateDonorProfileInput{
		DonorID:        deliverycontext.GetSubjectID(c),
		Name:           req.Name,
		Phone:          req.Phone,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDonorView(donor), "Profile updated successfully")
}

// ListDonations returns the authenticated donor's donation history.
func (h *DonorHandler) ListDonations(c echo.Context) error {
	donations, err := h.uc.ListDonations(c.Request().Context(), deliverycontext.GetSubjectID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDonationViews(donations), "Donations retrieved successfully")
}
