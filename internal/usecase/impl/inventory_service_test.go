package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"blooddonor/internal/domain/entity"
	domainerrors "blooddonor/internal/domain/errors"
	"blooddonor/internal/domain/repository"
	"blooddonor/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	donorRepo     *mockDonorRepository
	donationRepo  *mockDonationRepository
	inventoryRepo *mockInventoryRepository
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	t.Helper()

	donorRepo := &mockDonorRepository{}
	donationRepo := &mockDonationRepository{}
	inventoryRepo := &mockInventoryRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewInventoryService(InventoryServiceParams{
		TxManager: &stubTransactionManager{factory: &stubRepositoryFactory{
			donorRepo:     donorRepo,
			donationRepo:  donationRepo,
			inventoryRepo: inventoryRepo,
		}},
		DonationRepo:  donationRepo,
		InventoryRepo: inventoryRepo,
		Logger:        logger,
	})

	return inventoryServiceFixtures{
		service:       service,
		donorRepo:     donorRepo,
		donationRepo:  donationRepo,
		inventoryRepo: inventoryRepo,
	}
}

func TestInventoryService_RecordDonation_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	donor := &entity.Donor{ID: 2, BloodType: entity.BloodOPos}
	fx.donorRepo.On("FindByID", mock.Anything, int64(2)).Return(donor, nil)
	fx.donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.DonationRecord")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.DonationRecord).ID = 11
		}).
		Return(nil)
	fx.inventoryRepo.On("AddQuantity", mock.Anything, int64(1), entity.BloodOPos, 450).Return(nil)
	fx.inventoryRepo.On("ListByHospital", mock.Anything, int64(1)).Return([]*entity.InventoryEntry{
		{HospitalID: 1, BloodType: entity.BloodOPos, QuantityML: 450, LastUpdated: time.Now()},
	}, nil)

	output, err := fx.service.RecordDonation(context.Background(), &usecase.RecordDonationInput{
		HospitalID: 1,
		DonorID:    2,
		BloodType:  "O+",
		QuantityML: 450,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.Record.ID)
	assert.False(t, output.Record.DonatedAt.IsZero())
	require.NotNil(t, output.Inventory)
	assert.Equal(t, 450, output.Inventory.QuantityML)
	fx.inventoryRepo.AssertExpectations(t)
}

func TestInventoryService_RecordDonation_UnknownDonor(t *testing.T) {
	fx := createTestInventoryService(t)

	fx.donorRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, repository.ErrDonorNotFound)

	output, err := fx.service.RecordDonation(context.Background(), &usecase.RecordDonationInput{
		HospitalID: 1,
		DonorID:    404,
		BloodType:  "O+",
		QuantityML: 450,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDonorNotFound))
	fx.donationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.inventoryRepo.AssertNotCalled(t, "AddQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryService_RecordDonation_AppendFailureSkipsInventory(t *testing.T) {
	fx := createTestInventoryService(t)

	donor := &entity.Donor{ID: 2}
	fx.donorRepo.On("FindByID", mock.Anything, int64(2)).Return(donor, nil)
	fx.donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.DonationRecord")).
		Return(errors.New("insert failed"))

	output, err := fx.service.RecordDonation(context.Background(), &usecase.RecordDonationInput{
		HospitalID: 1,
		DonorID:    2,
		BloodType:  "O+",
		QuantityML: 450,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	fx.inventoryRepo.AssertNotCalled(t, "AddQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryService_RecordDonation_RejectsBadInput(t *testing.T) {
	fx := createTestInventoryService(t)

	_, badTypeErr := fx.service.RecordDonation(context.Background(), &usecase.RecordDonationInput{
		HospitalID: 1,
		DonorID:    2,
		BloodType:  "Q+",
		QuantityML: 450,
	})
	_, badQuantityErr := fx.service.RecordDonation(context.Background(), &usecase.RecordDonationInput{
		HospitalID: 1,
		DonorID:    2,
		BloodType:  "O+",
		QuantityML: 0,
	})

	assert.True(t, errors.Is(badTypeErr, domainerrors.ErrValidationFailed))
	assert.True(t, errors.Is(badQuantityErr, domainerrors.ErrValidationFailed))
}

// --- Lost-update scenario with concurrency-safe fakes ---

type fakeDonorRepo struct {
	mockDonorRepository
}

func (f *fakeDonorRepo) FindByID(_ context.Context, id int64) (*entity.Donor, error) {
	return &entity.Donor{ID: id}, nil
}

type fakeDonationRepo struct {
	mockDonationRepository

	mu      sync.Mutex
	records []*entity.DonationRecord
}

func (f *fakeDonationRepo) Create(_ context.Context, record *entity.DonationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record.ID = int64(len(f.records) + 1)
	f.records = append(f.records, record)

	return nil
}

// fakeInventoryRepo mimics the storage layer's atomic conditional upsert.
type fakeInventoryRepo struct {
	mu      sync.Mutex
	buckets map[entity.BloodType]int
}

func (f *fakeInventoryRepo) AddQuantity(_ context.Context, _ int64, bloodType entity.BloodType, quantityML int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buckets[bloodType] += quantityML

	return nil
}

func (f *fakeInventoryRepo) ListByHospital(_ context.Context, hospitalID int64) ([]*entity.InventoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]*entity.InventoryEntry, 0, len(f.buckets))
	for bloodType, quantity := range f.buckets {
		entries = append(entries, &entity.InventoryEntry{
			HospitalID: hospitalID,
			BloodType:  bloodType,
			QuantityML: quantity,
		})
	}

	return entries, nil
}

// Two concurrent donations for the same (hospital, blood type) pair must both
// land: the final quantity is the sum, never one of the two increments.
func TestInventoryService_RecordDonation_ConcurrentIncrements(t *testing.T) {
	donorRepo := &fakeDonorRepo{}
	donationRepo := &fakeDonationRepo{}
	inventoryRepo := &fakeInventoryRepo{buckets: map[entity.BloodType]int{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewInventoryService(InventoryServiceParams{
		TxManager: &stubTransactionManager{factory: &stubRepositoryFactory{
			donorRepo:     donorRepo,
			donationRepo:  donationRepo,
			inventoryRepo: inventoryRepo,
		}},
		DonationRepo:  donationRepo,
		InventoryRepo: inventoryRepo,
		Logger:        logger,
	})

	var wg sync.WaitGroup
	for donorID := int64(1); donorID <= 2; donorID++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.RecordDonation(context.Background(), &usecase.RecordDonationInput{
				HospitalID: 7,
				DonorID:    donorID,
				BloodType:  "O+",
				QuantityML: 1,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, inventoryRepo.buckets[entity.BloodOPos])
	assert.Len(t, donationRepo.records, 2)
}

func TestInventoryService_ListInventory(t *testing.T) {
	fx := createTestInventoryService(t)

	entries := []*entity.InventoryEntry{
		{HospitalID: 1, BloodType: entity.BloodAPos, QuantityML: 900},
		{HospitalID: 1, BloodType: entity.BloodOPos, QuantityML: 450},
	}
	fx.inventoryRepo.On("ListByHospital", mock.Anything, int64(1)).Return(entries, nil)

	result, err := fx.service.ListInventory(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
