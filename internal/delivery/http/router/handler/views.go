package handler

import (
	"time"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/usecase"
)

// Response views decouple the JSON surface from the domain entities and keep
// internal fields (password hashes in particular) out of every payload.

type donorView struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	BloodType        string    `json:"blood_type"`
	MedicalHistory   string    `json:"medical_history,omitempty"`
	FlaggedForReview bool      `json:"flagged_for_review"`
	CreatedAt        time.Time `json:"created_at"`
}

type hospitalView struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contact_person"`
	CreatedAt     time.Time `json:"created_at"`
}

type adminView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type donationView struct {
	ID         int64     `json:"id"`
	HospitalID int64     `json:"hospital_id"`
	DonorID    int64     `json:"donor_id"`
	BloodType  string    `json:"blood_type"`
	QuantityML int       `json:"quantity"`
	DonatedAt  time.Time `json:"donated_at"`
}

type inventoryView struct {
	HospitalID  int64     `json:"hospital_id"`
	BloodType   string    `json:"blood_type"`
	QuantityML  int       `json:"quantity"`
	LastUpdated time.Time `json:"last_updated"`
}

func newDonorView(donor *entity.Donor) *donorView {
	if donor == nil {
		return nil
	}

	return &donorView{
		ID:               donor.ID,
		Name:             donor.Name,
		Email:            donor.Email,
		Phone:            donor.Phone,
		BloodType:        donor.BloodType.String(),
		MedicalHistory:   donor.MedicalHistory,
		FlaggedForReview: donor.FlaggedForReview(),
		CreatedAt:        donor.CreatedAt,
	}
}

func newDonorViews(donors []*entity.Donor) []*donorView {
	views := make([]*donorView, 0, len(donors))
	for _, donor := range donors {
		views = append(views, newDonorView(donor))
	}

	return views
}

func newHospitalView(hospital *entity.Hospital) *hospitalView {
	if hospital == nil {
		return nil
	}

	return &hospitalView{
		ID:            hospital.ID,
		Name:          hospital.Name,
		Email:         hospital.Email,
		Phone:         hospital.Phone,
		Address:       hospital.Address,
		ContactPerson: hospital.ContactPerson,
		CreatedAt:     hospital.CreatedAt,
	}
}

func newAdminView(admin *usecase.AdminAccount) *adminView {
	if admin == nil {
		return nil
	}

	return &adminView{ID: admin.ID, Username: admin.Username}
}

func newDonationView(record *entity.DonationRecord) *donationView {
	if record == nil {
		return nil
	}

	return &donationView{
		ID:         record.ID,
		HospitalID: record.HospitalID,
		DonorID:    record.DonorID,
		BloodType:  record.BloodType.String(),
		QuantityML: record.QuantityML,
		DonatedAt:  record.DonatedAt,
	}
}

func newDonationViews(records []*entity.DonationRecord) []*donationView {
	views := make([]*donationView, 0, len(records))
	for _, record := range records {
		views = append(views, newDonationView(record))
	}

	return views
}

func newInventoryView(entry *entity.InventoryEntry) *inventoryView {
	if entry == nil {
		return nil
	}

	return &inventoryView{
		HospitalID:  entry.HospitalID,
		BloodType:   entry.BloodType.String(),
		QuantityML:  entry.QuantityML,
		LastUpdated: entry.LastUpdated,
	}
}

func newInventoryViews(entries []*entity.InventoryEntry) []*inventoryView {
	views := make([]*inventoryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, newInventoryView(entry))
	}

	return views
}
