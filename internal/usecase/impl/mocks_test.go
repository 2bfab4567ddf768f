package impl

import (
	"context"
	"time"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/repository"
	"blooddonor/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// Hand-written testify doubles for the repository and service interfaces
// used across the service tests in this package.

type mockDonorRepository struct {
	mock.Mock
}

func (m *mockDonorRepository) FindByID(ctx context.Context, id int64) (*entity.Donor, error) {
	args := m.Called(ctx, id)
	if donor, ok := args.Get(0).(*entity.Donor); ok {
		return donor, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDonorRepository) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Donor, error) {
	args := m.Called(ctx, email, phone)
	if donor, ok := args.Get(0).(*entity.Donor); ok {
		return donor, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDonorRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	args := m.Called(ctx, email, phone)

	return args.Bool(0), args.Error(1)
}

func (m *mockDonorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	args := m.Called(ctx, donor)

	return args.Error(0)
}

func (m *mockDonorRepository) Update(ctx context.Context, donor *entity.Donor) error {
	args := m.Called(ctx, donor)

	return args.Error(0)
}

func (m *mockDonorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockDonorRepository) ListAll(ctx context.Context) ([]*entity.Donor, error) {
	args := m.Called(ctx)
	if donors, ok := args.Get(0).([]*entity.Donor); ok {
		return donors, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDonorRepository) Search(ctx context.Context, query string) ([]*entity.Donor, error) {
	args := m.Called(ctx, query)
	if donors, ok := args.Get(0).([]*entity.Donor); ok {
		return donors, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockHospitalRepository struct {
	mock.Mock
}

func (m *mockHospitalRepository) FindByID(ctx context.Context, id int64) (*entity.Hospital, error) {
	args := m.Called(ctx, id)
	if hospital, ok := args.Get(0).(*entity.Hospital); ok {
		return hospital, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockHospitalRepository) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Hospital, error) {
	args := m.Called(ctx, email, phone)
	if hospital, ok := args.Get(0).(*entity.Hospital); ok {
		return hospital, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockHospitalRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	args := m.Called(ctx, email, phone)

	return args.Bool(0), args.Error(1)
}

func (m *mockHospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	args := m.Called(ctx, hospital)

	return args.Error(0)
}

func (m *mockHospitalRepository) Update(ctx context.Context, hospital *entity.Hospital) error {
	args := m.Called(ctx, hospital)

	return args.Error(0)
}

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id int64) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	args := m.Called(ctx, username)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}

type mockDonationRepository struct {
	mock.Mock
}

func (m *mockDonationRepository) Create(ctx context.Context, record *entity.DonationRecord) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}

func (m *mockDonationRepository) ListByDonor(ctx context.Context, donorID int64) ([]*entity.DonationRecord, error) {
	args := m.Called(ctx, donorID)
	if records, ok := args.Get(0).([]*entity.DonationRecord); ok {
		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockDonationRepository) ListByHospital(ctx context.Context, hospitalID int64) ([]*entity.DonationRecord, error) {
	args := m.Called(ctx, hospitalID)
	if records, ok := args.Get(0).([]*entity.DonationRecord); ok {
		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) AddQuantity(ctx context.Context, hospitalID int64, bloodType entity.BloodType, quantityML int) error {
	args := m.Called(ctx, hospitalID, bloodType, quantityML)

	return args.Error(0)
}

func (m *mockInventoryRepository) ListByHospital(ctx context.Context, hospitalID int64) ([]*entity.InventoryEntry, error) {
	args := m.Called(ctx, hospitalID)
	if entries, ok := args.Get(0).([]*entity.InventoryEntry); ok {
		return entries, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(subjectID int64, role entity.Role) (string, error) {
	args := m.Called(subjectID, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) TTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// stubRepositoryFactory hands the test's mocks back to transactional closures.
type stubRepositoryFactory struct {
	donorRepo     repository.DonorRepository
	hospitalRepo  repository.HospitalRepository
	adminRepo     repository.AdminRepository
	donationRepo  repository.DonationRepository
	inventoryRepo repository.InventoryRepository
}

func (f *stubRepositoryFactory) DonorRepo() repository.DonorRepository { return f.donorRepo }

func (f *stubRepositoryFactory) HospitalRepo() repository.HospitalRepository { return f.hospitalRepo }

func (f *stubRepositoryFactory) AdminRepo() repository.AdminRepository { return f.adminRepo }

func (f *stubRepositoryFactory) DonationRepo() repository.DonationRepository { return f.donationRepo }

func (f *stubRepositoryFactory) InventoryRepo() repository.InventoryRepository {
	return f.inventoryRepo
}

// stubTransactionManager runs the closure directly against the stub factory.
// Returning the closure's error mirrors a rollback, nil mirrors a commit.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
