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

// HospitalHandler holds dependencies for hospital-related handlers.
type HospitalHandler struct {
	uc     usecase.HospitalUsecase
	logger *slog.Logger
}

// NewHospitalHandler is the constructor for HospitalHandler, injected by Fx.
func NewHospitalHandler(uc usecase.HospitalUsecase, logger *slog.Logger) *HospitalHandler {
	return &HospitalHandler{uc: uc, logger: logger}
}

type registerHospitalRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ContactPerson string `json:"contact_person" validate:"required"`
}

type hospitalLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type updateHospitalProfileRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ContactPerson string `json:"contact_person"`
}

type hospitalSessionResponse struct {
	Token    string        `json:"token"`
	Hospital *hospitalView `json:"hospital"`
}

// Register handles the hospital registration request. Like donor
// registration, the response carries a ready-to-use session token.
func (h *HospitalHandler) Register(c echo.Context) error {
	var req registerHospitalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterHospitalInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, hospitalSessionResponse{
		Token:    output.Token,
		Hospital: newHospitalView(output.Hospital),
	}, "Hospital registered successfully")
}

// Login handles the hospital login request.
func (h *HospitalHandler) Login(c echo.Context) error {
	var req hospitalLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.HospitalLoginInput{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hospitalSessionResponse{
		Token:    output.Token,
		Hospital: newHospitalView(output.Hospital),
	}, "Login successful")
}

// GetProfile returns the authenticated hospital's profile.
func (h *HospitalHandler) GetProfile(c echo.Context) error {
	hospital, err := h.uc.GetProfile(c.Request().Context(), deliverycontext.GetSubjectID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newHospitalView(hospital), "Profile retrieved successfully")
}

// UpdateProfile rewrites the authenticated hospital's mutable profile fields.
func (h *HospitalHandler) UpdateProfile(c echo.Context) error {
	var req updateHospitalProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	hospital, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateHospitalProfileInput{
		HospitalID:    deliverycontext.GetSubjectID(c),
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newHospitalView(hospital), "Profile updated successfully")
}
