package model

import "time"

// DonationModel mirrors the append-only 'donations' table.
type DonationModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	HospitalID int64     `gorm:"not null;index"`
	DonorID    int64     `gorm:"not null;index"`
	BloodType  string    `gorm:"type:varchar(3);not null"`
	QuantityML int       `gorm:"not null"`
	DonatedAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
