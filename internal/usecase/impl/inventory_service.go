package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "blooddonor/internal/delivery/context"
	"blooddonor/internal/domain/entity"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/domain/repository"
	"blooddonor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager     repository.TransactionManager
	donationRepo  repository.DonationRepository
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DonationRepo  repository.DonationRepository
	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager:     params.TxManager,
		donationRepo:  params.DonationRepo,
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordDonation appends a donation record and folds it into the hospital's
// inventory inside one transaction. The donor must exist at write time, the
// record append and the inventory increment commit together or not at all.
func (srv *inventoryService) RecordDonation(ctx context.Context, input *usecase.RecordDonationInput) (*usecase.RecordDonationOutput, error) {
	srv.log(ctx).Info("Recording donation",
		slog.Int64("hospitalID", input.HospitalID),
		slog.Int64("donorID", input.DonorID),
		slog.String("bloodType", input.BloodType))

	bloodType := entity.BloodType(input.BloodType)
	if !bloodType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown blood type")
	}
	if input.QuantityML <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	donatedAt := input.DonatedAt
	if donatedAt.IsZero() {
		donatedAt = time.Now()
	}

	record := &entity.DonationRecord{
		HospitalID: input.HospitalID,
		DonorID:    input.DonorID,
		BloodType:  bloodType,
		QuantityML: input.QuantityML,
		DonatedAt:  donatedAt,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		donorRepo := repoFactory.DonorRepo()
		donationRepo := repoFactory.DonationRepo()
		inventoryRepo := repoFactory.InventoryRepo()

		if _, err := donorRepo.FindByID(ctx, input.DonorID); err != nil {
			if errors.Is(err, repository.ErrDonorNotFound) {
				return errors.Wrap(domainerrors.ErrDonorNotFound, "donation references unknown donor")
			}

			return errors.Wrap(err, "failed to verify donor")
		}

		if err := donationRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to append donation record")
		}

		if err := inventoryRepo.AddQuantity(ctx, input.HospitalID, bloodType, input.QuantityML); err != nil {
			return errors.Wrap(err, "failed to increment inventory")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Recording donation failed",
			slog.Int64("hospitalID", input.HospitalID),
			slog.Int64("donorID", input.DonorID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute record donation transaction")
	}

	entry, err := srv.findInventoryEntry(ctx, input.HospitalID, bloodType)
	if err != nil {
		srv.log(ctx).Warn("Failed to read back inventory entry", slog.Int64("hospitalID", input.HospitalID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Donation recorded", slog.Int64("recordID", record.ID))

	return &usecase.RecordDonationOutput{Record: record, Inventory: entry}, nil
}

// findInventoryEntry fetches the single (hospital, blood type) bucket after a write.
func (srv *inventoryService) findInventoryEntry(ctx context.Context, hospitalID int64, bloodType entity.BloodType) (*entity.InventoryEntry, error) {
	entries, err := srv.inventoryRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	for _, entry := range entries {
		if entry.BloodType == bloodType {
			return entry, nil
		}
	}

	return nil, nil
}

// ListInventory returns the hospital's current inventory, ordered by blood type.
func (srv *inventoryService) ListInventory(ctx context.Context, hospitalID int64) ([]*entity.InventoryEntry, error) {
	entries, err := srv.inventoryRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hospital inventory")
	}

	return entries, nil
}

// ListHospitalDonations returns all donations recorded by the hospital, newest first.
func (srv *inventoryService) ListHospitalDonations(ctx context.Context, hospitalID int64) ([]*entity.DonationRecord, error) {
	donations, err := srv.donationRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hospital donations")
	}

	return donations, nil
}
