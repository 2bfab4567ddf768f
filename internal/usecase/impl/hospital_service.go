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

// hospitalService implements the HospitalUsecase interface.
type hospitalService struct {
	txManager    repository.TransactionManager
	hospitalRepo repository.HospitalRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// HospitalServiceParams holds dependencies for hospitalService, injected by Fx.
type HospitalServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	HospitalRepo repository.HospitalRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewHospitalService is the constructor for hospitalService.
func NewHospitalService(params HospitalServiceParams) usecase.HospitalUsecase {
	return &hospitalService{
		txManager:    params.TxManager,
		hospitalRepo: params.HospitalRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *hospitalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new hospital identity and returns an immediately usable session.
func (srv *hospitalService) Register(ctx context.Context, input *usecase.RegisterHospitalInput) (*usecase.HospitalSessionOutput, error) {
	srv.log(ctx).Info("Starting hospital registration", slog.String("email", input.Email))

	newHospital := &entity.Hospital{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		ContactPerson: input.ContactPerson,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hospitalRepo := repoFactory.HospitalRepo()

		exists, err := hospitalRepo.ExistsByEmailOrPhone(ctx, input.Email, input.Phone)
		if err != nil {
			return errors.Wrap(err, "failed to check hospital uniqueness")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrDuplicateHospital, "hospital registration rejected")
		}

		if err := hospitalRepo.Create(ctx, newHospital); err != nil {
			return errors.Wrap(err, "failed to create hospital")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Hospital registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute hospital registration transaction")
	}

	token, err := srv.tokenService.Issue(newHospital.ID, entity.RoleHospital)
	if err != nil {
		srv.log(ctx).Error("Failed to issue hospital session token", slog.Int64("hospitalID", newHospital.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue hospital session token")
	}

	srv.log(ctx).Debug("Hospital registered", slog.Int64("hospitalID", newHospital.ID))

	return &usecase.HospitalSessionOutput{Token: token, Hospital: newHospital}, nil
}

// Login resolves a hospital by the exact email/phone pair and issues a session token.
func (srv *hospitalService) Login(ctx context.Context, input *usecase.HospitalLoginInput) (*usecase.HospitalSessionOutput, error) {
	srv.log(ctx).Debug("Starting hospital login", slog.String("email", input.Email))

	hospital, err := srv.hospitalRepo.FindByEmailAndPhone(ctx, input.Email, input.Phone)
	if err != nil {
		srv.log(ctx).Warn("Hospital login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrHospitalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "hospital login failed")
		}

		return nil, errors.Wrap(err, "failed to find hospital by login pair")
	}

	token, err := srv.tokenService.Issue(hospital.ID, entity.RoleHospital)
	if err != nil {
		srv.log(ctx).Error("Failed to issue hospital session token", slog.Int64("hospitalID", hospital.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue hospital session token")
	}

	srv.log(ctx).Debug("Hospital logged in", slog.Int64("hospitalID", hospital.ID))

	return &usecase.HospitalSessionOutput{Token: token, Hospital: hospital}, nil
}

// UpdateProfile rewrites the mutable profile fields of a hospital.
func (srv *hospitalService) UpdateProfile(ctx context.Context, input *usecase.UpdateHospitalProfileInput) (*entity.Hospital, error) {
	srv.log(ctx).Info("Updating hospital profile", slog.Int64("hospitalID", input.HospitalID))

	var updated *entity.Hospital
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hospitalRepo := repoFactory.HospitalRepo()

		hospital, err := hospitalRepo.FindByID(ctx, input.HospitalID)
		if err != nil {
			if errors.Is(err, repository.ErrHospitalNotFound) {
				return errors.Wrap(domainerrors.ErrHospitalNotFound, "hospital profile update failed")
			}

			return errors.Wrap(err, "failed to find hospital by id")
		}

		hospital.Name = input.Name
		hospital.Phone = input.Phone
		hospital.Address = input.Address
		if input.ContactPerson != "" {
			hospital.ContactPerson = input.ContactPerson
		}

		if err := hospitalRepo.Update(ctx, hospital); err != nil {
			return errors.Wrap(err, "failed to update hospital")
		}

		updated = hospital

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Hospital profile update failed", slog.Int64("hospitalID", input.HospitalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute hospital profile update transaction")
	}

	return updated, nil
}

// GetProfile returns the hospital identified by id.
func (srv *hospitalService) GetProfile(ctx context.Context, hospitalID int64) (*entity.Hospital, error) {
	hospital, err := srv.hospitalRepo.FindByID(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHospitalNotFound, "hospital profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find hospital by id")
	}

	return hospital, nil
}
