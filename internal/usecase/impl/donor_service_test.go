package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blooddonor/internal/domain/entity"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/domain/repository"
	"blooddonor/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// donorServiceFixtures holds all test dependencies for donor service tests.
type donorServiceFixtures struct {
	service      usecase.DonorUsecase
	donorRepo    *mockDonorRepository
	donationRepo *mockDonationRepository
	tokenService *mockTokenService
}

func createTestDonorService(t *testing.T) donorServiceFixtures {
	t.Helper()

	donorRepo := &mockDonorRepository{}
	donationRepo := &mockDonationRepository{}
	tokenService := &mockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDonorService(DonorServiceParams{
		TxManager: &stubTransactionManager{factory: &stubRepositoryFactory{
			donorRepo:    donorRepo,
			donationRepo: donationRepo,
		}},
		DonorRepo:    donorRepo,
		DonationRepo: donationRepo,
		TokenService: tokenService,
		Logger:       logger,
	})

	return donorServiceFixtures{
		service:      service,
		donorRepo:    donorRepo,
		donationRepo: donationRepo,
		tokenService: tokenService,
	}
}

func TestDonorService_Register_Success(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	input := &usecase.RegisterDonorInput{
		Name:      "A",
		Email:     "a@x.com",
		Phone:     "123",
		BloodType: "O+",
	}

	fx.donorRepo.On("ExistsByEmailOrPhone", mock.Anything, "a@x.com", "123").Return(false, nil)
	fx.donorRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Donor")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Donor).ID = 7
		}).
		Return(nil)
	fx.tokenService.On("Issue", int64(7), entity.RoleDonor).Return("session-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, int64(7), output.Donor.ID)
	assert.Equal(t, entity.BloodOPos, output.Donor.BloodType)
	fx.donorRepo.AssertExpectations(t)
	fx.tokenService.AssertExpectations(t)
}

func TestDonorService_Register_DuplicateEmailOrPhone(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	fx.donorRepo.On("ExistsByEmailOrPhone", mock.Anything, "a@x.com", "123").Return(true, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterDonorInput{
		Name:      "A",
		Email:     "a@x.com",
		Phone:     "123",
		BloodType: "O+",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateDonor))
	fx.donorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestDonorService_Register_UnknownBloodType(t *testing.T) {
	fx := createTestDonorService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterDonorInput{
		Name:      "A",
		Email:     "a@x.com",
		Phone:     "123",
		BloodType: "Q+",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDonorService_Login_Success(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	donor := &entity.Donor{ID: 42, Email: "a@x.com", Phone: "123", BloodType: entity.BloodONeg}
	fx.donorRepo.On("FindByEmailAndPhone", mock.Anything, "a@x.com", "123").Return(donor, nil)
	fx.tokenService.On("Issue", int64(42), entity.RoleDonor).Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.DonorLoginInput{Email: "a@x.com", Phone: "123"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.Donor.ID)
	assert.Equal(t, "session-token", output.Token)
}

func TestDonorService_Login_WrongPairIsGeneric(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	// Wrong phone and unknown email must be indistinguishable to the caller.
	fx.donorRepo.On("FindByEmailAndPhone", mock.Anything, "a@x.com", "999").
		Return(nil, repository.ErrDonorNotFound)
	fx.donorRepo.On("FindByEmailAndPhone", mock.Anything, "nobody@x.com", "123").
		Return(nil, repository.ErrDonorNotFound)

	_, wrongPhoneErr := fx.service.Login(ctx, &usecase.DonorLoginInput{Email: "a@x.com", Phone: "999"})
	_, wrongEmailErr := fx.service.Login(ctx, &usecase.DonorLoginInput{Email: "nobody@x.com", Phone: "123"})

	require.Error(t, wrongPhoneErr)
	require.Error(t, wrongEmailErr)
	assert.True(t, errors.Is(wrongPhoneErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongEmailErr, domainerrors.ErrInvalidCredentials))

	var wrongPhoneApp, wrongEmailApp domainerrors.AppError
	require.True(t, errors.As(wrongPhoneErr, &wrongPhoneApp))
	require.True(t, errors.As(wrongEmailErr, &wrongEmailApp))
	assert.Equal(t, wrongPhoneApp.Message(), wrongEmailApp.Message())
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestDonorService_GetProfile_NotFound(t *testing.T) {
	fx := createTestDonorService(t)

	fx.donorRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, repository.ErrDonorNotFound)

	output, err := fx.service.GetProfile(context.Background(), 404)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDonorNotFound))
}

func TestDonorService_GetProfile_IncludesDonations(t *testing.T) {
	fx := createTestDonorService(t)

	donor := &entity.Donor{ID: 5, Name: "A", BloodType: entity.BloodBPos}
	donations := []*entity.DonationRecord{
		{ID: 2, DonorID: 5, BloodType: entity.BloodBPos, QuantityML: 450},
		{ID: 1, DonorID: 5, BloodType: entity.BloodBPos, QuantityML: 450},
	}

	fx.donorRepo.On("FindByID", mock.Anything, int64(5)).Return(donor, nil)
	fx.donationRepo.On("ListByDonor", mock.Anything, int64(5)).Return(donations, nil)

	output, err := fx.service.GetProfile(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, donor, output.Donor)
	assert.Len(t, output.Donations, 2)
}

func TestDonorService_UpdateProfile_KeepsImmutableFields(t *testing.T) {
	fx := createTestDonorService(t)

	existing := &entity.Donor{
		ID:        9,
		Name:      "Old",
		Email:     "a@x.com",
		Phone:     "123",
		BloodType: entity.BloodABNeg,
	}
	fx.donorRepo.On("FindByID", mock.Anything, int64(9)).Return(existing, nil)
	fx.donorRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Donor")).Return(nil)

	updated, err := fx.service.UpdateProfile(context.Background(), &usecase.UpdateDonorProfileInput{
		DonorID:        9,
		Name:           "New",
		Phone:          "456",
		MedicalHistory: "none",
	})

	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "456", updated.Phone)
	// Email and blood type survive the rewrite untouched.
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, entity.BloodABNeg, updated.BloodType)
}
