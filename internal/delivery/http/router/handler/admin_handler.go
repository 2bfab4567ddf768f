package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"blooddonor/internal/delivery/http/response"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrator handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminUpdateDonorRequest struct {
	Name           string `json:"name" validate:"required"`
	BloodType      string `json:"blood_type" validate:"required"`
	MedicalHistory string `json:"medical_history"`
}

type adminSessionResponse struct {
	Token string     `json:"token"`
	Admin *adminView `json:"admin"`
}

type adminDonorDetailResponse struct {
	Donor     *donorView      `json:"donor"`
	Donations []*donationView `json:"donations"`
}

// Login handles the admin login request. The response exposes the admin's
// id and username only.
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.AdminLoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adminSessionResponse{
		Token: output.Token,
		Admin: newAdminView(output.Admin),
	}, "Login successful")
}

// ListDonors returns all donors, or the donors matching the q query parameter.
func (h *AdminHandler) ListDonors(c echo.Context) error {
	query := c.QueryParam("q")

	var (
		donors []*donorView
		err    error
	)
	if query != "" {
		found, searchErr := h.uc.SearchDonors(c.Request().Context(), query)
		donors, err = newDonorViews(found), searchErr
	} else {
		all, listErr := h.uc.ListDonors(c.Request().Context())
		donors, err = newDonorViews(all), listErr
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donors, "Donors retrieved successfully")
}

// GetDonor returns one donor with their donation history.
func (h *AdminHandler) GetDonor(c echo.Context) error {
	donorID, err := donorIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GetDonor(c.Request().Context(), donorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adminDonorDetailResponse{
		Donor:     newDonorView(output.Donor),
		Donations: newDonationViews(output.Donations),
	}, "Donor retrieved successfully")
}

// UpdateDonor rewrites a donor's mutable fields on behalf of the admin.
func (h *AdminHandler) UpdateDonor(c echo.Context) error {
	donorID, err := donorIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req adminUpdateDonorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	donor, err := h.uc.UpdateDonor(c.Request().Context(), &usecase.AdminUpdateDonorInput{
		DonorID:        donorID,
		Name:           req.Name,
		BloodType:      req.BloodType,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDonorView(donor), "Donor updated successfully")
}

// DeleteDonor removes a donor record.
func (h *AdminHandler) DeleteDonor(c echo.Context) error {
	donorID, err := donorIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteDonor(c.Request().Context(), donorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Donor deleted successfully")
}

func donorIDParam(c echo.Context) (int64, error) {
	donorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || donorID <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("donor id must be a positive integer")
	}

	return donorID, nil
}
