// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "blooddonor/internal/delivery/context"
	"blooddonor/internal/domain/entity"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/domain/repository"
	"blooddonor/internal/domain/service"
	"blooddonor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// donorService implements the DonorUsecase interface.
type donorService struct {
	txManager    repository.TransactionManager
	donorRepo    repository.DonorRepository
	donationRepo repository.DonationRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// DonorServiceParams holds dependencies for donorService, injected by Fx.
type DonorServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DonorRepo    repository.DonorRepository
	DonationRepo repository.DonationRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewDonorService is the constructor for donorService. It receives all dependencies as interfaces.
func NewDonorService(params DonorServiceParams) usecase.DonorUsecase {
	return &donorService{
		txManager:    params.TxManager,
		donorRepo:    params.DonorRepo,
		donationRepo: params.DonationRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *donorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new donor identity and returns an immediately usable session.
func (srv *donorService) Register(ctx context.Context, input *usecase.RegisterDonorInput) (*usecase.DonorSessionOutput, error) {
	srv.log(ctx).Info("Starting donor registration", slog.String("email", input.Email))

	bloodType := entity.BloodType(input.BloodType)
	if !bloodType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown blood type")
	}

	newDonor := &entity.Donor{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		BloodType:      bloodType,
		MedicalHistory: input.MedicalHistory,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		donorRepo := repoFactory.DonorRepo()

		exists, err := donorRepo.ExistsByEmailOrPhone(ctx, input.Email, input.Phone)
		if err != nil {
			return errors.Wrap(err, "failed to check donor uniqueness")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrDuplicateDonor, "donor registration rejected")
		}

		if err := donorRepo.Create(ctx, newDonor); err != nil {
			return errors.Wrap(err, "failed to create donor")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Donor registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute donor registration transaction")
	}

	if newDonor.FlaggedForReview() {
		srv.log(ctx).Warn("Donor medical history flagged for review", slog.Int64("donorID", newDonor.ID))
	}

	token, err := srv.tokenService.Issue(newDonor.ID, entity.RoleDonor)
	if err != nil {
		srv.log(ctx).Error("Failed to issue donor session token", slog.Int64("donorID", newDonor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue donor session token")
	}

	srv.log(ctx).Debug("Donor registered", slog.Int64("donorID", newDonor.ID))

	return &usecase.DonorSessionOutput{Token: token, Donor: newDonor}, nil
}

// Login resolves a donor by the exact email/phone pair and issues a session token.
// Both a missing donor and a mismatched pair yield the same generic error.
func (srv *donorService) Login(ctx context.Context, input *usecase.DonorLoginInput) (*usecase.DonorSessionOutput, error) {
	srv.log(ctx).Debug("Starting donor login", slog.String("email", input.Email))

	donor, err := srv.donorRepo.FindByEmailAndPhone(ctx, input.Email, input.Phone)
	if err != nil {
		srv.log(ctx).Warn("Donor login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "donor login failed")
		}

		return nil, errors.Wrap(err, "failed to find donor by login pair")
	}

	token, err := srv.tokenService.Issue(donor.ID, entity.RoleDonor)
	if err != nil {
		srv.log(ctx).Error("Failed to issue donor session token", slog.Int64("donorID", donor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue donor session token")
	}

	srv.log(ctx).Debug("Donor logged in", slog.Int64("donorID", donor.ID))

	return &usecase.DonorSessionOutput{Token: token, Donor: donor}, nil
}

// GetProfile returns the donor and their donation history.
func (srv *donorService) GetProfile(ctx context.Context, donorID int64) (*usecase.DonorProfileOutput, error) {
	donor, err := srv.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDonorNotFound, "donor profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find donor by id")
	}

	donations, err := srv.donationRepo.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donor donations")
	}

	return &usecase.DonorProfileOutput{Donor: donor, Donations: donations}, nil
}

// UpdateProfile rewrites the mutable profile fields of a donor. Blood type
// and email stay fixed after registration; the phone may change but remains
// bound by the login pair uniqueness rule.
func (srv *donorService) UpdateProfile(ctx context.Context, input *usecase.UpdateDonorProfileInput) (*entity.Donor, error) {
	srv.log(ctx).Info("Updating donor profile", slog.Int64("donorID", input.DonorID))

	var updated *entity.Donor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		donorRepo := repoFactory.DonorRepo()

		donor, err := donorRepo.FindByID(ctx, input.DonorID)
		if err != nil {
			if errors.Is(err, repository.ErrDonorNotFound) {
				return errors.Wrap(domainerrors.ErrDonorNotFound, "donor profile update failed")
			}

			return errors.Wrap(err, "failed to find donor by id")
		}

		donor.Name = input.Name
		donor.Phone = input.Phone
		donor.MedicalHistory = input.MedicalHistory

		if err := donorRepo.Update(ctx, donor); err != nil {
			return errors.Wrap(err, "failed to update donor")
		}

		updated = donor

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Donor profile update failed", slog.Int64("donorID", input.DonorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute donor profile update transaction")
	}

	return updated, nil
}

// ListDonations returns the donor's donation history, newest first.
func (srv *donorService) ListDonations(ctx context.Context, donorID int64) ([]*entity.DonationRecord, error) {
	donations, err := srv.donationRepo.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donor donations")
	}

	return donations, nil
}
