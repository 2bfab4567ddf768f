package model

import "time"

// InventoryModel mirrors the 'blood_inventory' table, keyed by the composite
// (hospital_id, blood_type). Rows are only ever written through the
// conditional upsert in the inventory repository.
type InventoryModel struct {
	HospitalID  int64     `gorm:"primaryKey;autoIncrement:false"`
	BloodType   string    `gorm:"primaryKey;type:varchar(3)"`
	QuantityML  int       `gorm:"not null"`
	LastUpdated time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "blood_inventory"
}
