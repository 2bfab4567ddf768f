package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "blooddonor/internal/delivery/context"
	"blooddonor/internal/delivery/http/response"
	"blooddonor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DonationHandler holds dependencies for donation recording and inventory queries.
type DonationHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler, injected by Fx.
func NewDonationHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *DonationHandler {
	return &DonationHandler{uc: uc, logger: logger}
}

type recordDonationRequest struct {
	DonorID    int64      `json:"donor_id" validate:"required,gt=0"`
	BloodType  string     `json:"blood_type" validate:"required"`
	QuantityML int        `json:"quantity" validate:"required,gt=0"`
	DonatedAt  *time.Time `json:"donated_at"`
}

type recordDonationResponse struct {
	Record    *donationView  `json:"record"`
	Inventory *inventoryView `json:"inventory,omitempty"`
}

// RecordDonation appends a donation for the authenticated hospital. The
// hospital id always comes from the session, never from the body.
func (h *DonationHandler) RecordDonation(c echo.Context) error {
	var req recordDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RecordDonationInput{
		HospitalID: deliverycontext.GetSubjectID(c),
		DonorID:    req.DonorID,
		BloodType:  req.BloodType,
		QuantityML: req.QuantityML,
	}
	if req.DonatedAt != nil {
		input.DonatedAt = *req.DonatedAt
	}

	output, err := h.uc.RecordDonation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recordDonationResponse{
		Record:    newDonationView(output.Record),
		Inventory: newInventoryView(output.Inventory),
	}, "Donation recorded successfully")
}

// ListHospitalDonations returns the authenticated hospital's recorded donations.
func (h *DonationHandler) ListHospitalDonations(c echo.Context) error {
	donations, err := h.uc.ListHospitalDonations(c.Request().Context(), deliverycontext.GetSubjectID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDonationViews(donations), "Donations retrieved successfully")
}

// ListInventory returns the authenticated hospital's blood inventory.
func (h *DonationHandler) ListInventory(c echo.Context) error {
	entries, err := h.uc.ListInventory(c.Request().Context(), deliverycontext.GetSubjectID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryViews(entries), "Inventory retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
