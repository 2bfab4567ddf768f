package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custommiddleware "blooddonor/internal/delivery/http/middleware"
	"blooddonor/internal/delivery/http/validator"
	"blooddonor/internal/domain/entity"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDonorUsecase struct {
	mock.Mock
}

func (m *mockDonorUsecase) Register(ctx context.Context, input *usecase.RegisterDonorInput) (*usecase.DonorSessionOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.DonorSessionOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDonorUsecase) Login(ctx context.Context, input *usecase.DonorLoginInput) (*usecase.DonorSessionOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.DonorSessionOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDonorUsecase) GetProfile(ctx context.Context, donorID int64) (*usecase.DonorProfileOutput, error) {
	args := m.Called(ctx, donorID)
	if output, ok := args.Get(0).(*usecase.DonorProfileOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDonorUsecase) UpdateProfile(ctx context.Context, input *usecase.UpdateDonorProfileInput) (*entity.Donor, error) {
	args := m.Called(ctx, input)
	if donor, ok := args.Get(0).(*entity.Donor); ok {
		return donor, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDonorUsecase) ListDonations(ctx context.Context, donorID int64) ([]*entity.DonationRecord, error) {
	args := m.Called(ctx, donorID)
	if records, ok := args.Get(0).([]*entity.DonationRecord); ok {
		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

// newTestServer wires the real validator and error handler so the tests
// observe the same status mapping as production.
func newTestServer(t *testing.T) (*echo.Echo, *mockDonorUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := &mockDonorUsecase{}
	h := NewDonorHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/donor/register", h.Register)
	e.POST("/api/donor/login", h.Login)

	return e, uc
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestDonorHandler_Register_Created(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterDonorInput")).
		Return(&usecase.DonorSessionOutput{
			Token: "session-token",
			Donor: &entity.Donor{ID: 1, Name: "A", Email: "a@x.com", Phone: "123", BloodType: entity.BloodOPos},
		}, nil)

	rec := postJSON(e, "/api/donor/register",
		`{"name":"A","email":"a@x.com","phone":"123","blood_type":"O+"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"session-token"`)
	assert.Contains(t, rec.Body.String(), `"blood_type":"O+"`)
}

func TestDonorHandler_Register_MissingFields(t *testing.T) {
	e, uc := newTestServer(t)

	rec := postJSON(e, "/api/donor/register", `{"name":"A","email":"a@x.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestDonorHandler_Register_Duplicate(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterDonorInput")).
		Return(nil, errors.Wrap(domainerrors.ErrDuplicateDonor, "donor registration rejected"))

	rec := postJSON(e, "/api/donor/register",
		`{"name":"A","email":"a@x.com","phone":"123","blood_type":"O+"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_DONOR")
}

func TestDonorHandler_Login_InvalidCredentialsIsGeneric(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.DonorLoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "donor login failed"))

	rec := postJSON(e, "/api/donor/login", `{"email":"a@x.com","phone":"999"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	// The body must not disclose which half of the pair was wrong.
	assert.NotContains(t, rec.Body.String(), "phone")
	assert.NotContains(t, rec.Body.String(), "email")
}

func TestDonorHandler_Login_InternalErrorHidesDetails(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.DonorLoginInput")).
		Return(nil, errors.New("pq: connection refused on 10.0.0.3"))

	rec := postJSON(e, "/api/donor/login", `{"email":"a@x.com","phone":"123"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
