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

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	adminRepo    repository.AdminRepository
	donorRepo    repository.DonorRepository
	donationRepo repository.DonationRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	DonorRepo    repository.DonorRepository
	DonationRepo repository.DonationRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		adminRepo:    params.AdminRepo,
		donorRepo:    params.DonorRepo,
		donationRepo: params.DonationRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the admin's password against the stored bcrypt hash and
// issues a session token. An unknown username and a wrong password both
// yield the same generic error.
func (srv *adminService) Login(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("username", input.Username))

	admin, err := srv.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Admin login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	// bcrypt check runs outside any transaction (CPU-bound).
	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	token, err := srv.tokenService.Issue(admin.ID, entity.RoleAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to issue admin session token", slog.Int64("adminID", admin.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue admin session token")
	}

	srv.log(ctx).Debug("Admin logged in", slog.Int64("adminID", admin.ID))

	return &usecase.AdminLoginOutput{
		Token: token,
		Admin: &usecase.AdminAccount{ID: admin.ID, Username: admin.Username},
	}, nil
}

// ListDonors returns every donor, ordered by name.
func (srv *adminService) ListDonors(ctx context.Context) ([]*entity.Donor, error) {
	donors, err := srv.donorRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donors")
	}

	return donors, nil
}

// SearchDonors returns donors matching the query by name, email or blood type.
func (srv *adminService) SearchDonors(ctx context.Context, query string) ([]*entity.Donor, error) {
	donors, err := srv.donorRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search donors")
	}

	return donors, nil
}

// GetDonor returns one donor together with their donation history.
func (srv *adminService) GetDonor(ctx context.Context, donorID int64) (*usecase.AdminDonorDetailOutput, error) {
	donor, err := srv.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDonorNotFound, "donor lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find donor by id")
	}

	donations, err := srv.donationRepo.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donor donations")
	}

	return &usecase.AdminDonorDetailOutput{Donor: donor, Donations: donations}, nil
}

// UpdateDonor rewrites a donor's mutable fields on behalf of an administrator.
func (srv *adminService) UpdateDonor(ctx context.Context, input *usecase.AdminUpdateDonorInput) (*entity.Donor, error) {
	srv.log(ctx).Info("Admin updating donor", slog.Int64("donorID", input.DonorID))

	bloodType := entity.BloodType(input.BloodType)
	if !bloodType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown blood type")
	}

	var updated *entity.Donor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		donorRepo := repoFactory.DonorRepo()

		donor, err := donorRepo.FindByID(ctx, input.DonorID)
		if err != nil {
			if errors.Is(err, repository.ErrDonorNotFound) {
				return errors.Wrap(domainerrors.ErrDonorNotFound, "donor update failed")
			}

			return errors.Wrap(err, "failed to find donor by id")
		}

		donor.Name = input.Name
		donor.BloodType = bloodType
		donor.MedicalHistory = input.MedicalHistory

		if err := donorRepo.Update(ctx, donor); err != nil {
			return errors.Wrap(err, "failed to update donor")
		}

		updated = donor

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Admin donor update failed", slog.Int64("donorID", input.DonorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute admin donor update transaction")
	}

	return updated, nil
}

// DeleteDonor removes a donor record. Donation records are kept: the log is
// append-only and inventory totals must not change retroactively.
func (srv *adminService) DeleteDonor(ctx context.Context, donorID int64) error {
	srv.log(ctx).Info("Admin deleting donor", slog.Int64("donorID", donorID))

	if err := srv.donorRepo.Delete(ctx, donorID); err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return errors.Wrap(domainerrors.ErrDonorNotFound, "donor delete failed")
		}

		return errors.Wrap(err, "failed to delete donor")
	}

	return nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when no admin with
// the configured username exists. Called once on startup.
func (srv *adminService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := srv.adminRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check for existing admin")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash default admin password")
	}

	newAdmin := &entity.Admin{Username: username, PasswordHash: hash}
	if err := srv.adminRepo.Create(ctx, newAdmin); err != nil {
		// Another instance may have created the account concurrently.
		if errors.Is(err, domainerrors.ErrDuplicateAdmin) {
			return nil
		}

		return errors.Wrap(err, "failed to create default admin")
	}

	srv.logger.Info("Created default admin account", slog.String("username", username))

	return nil
}
