// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// DonorModel mirrors the 'donors' table. Email and phone each carry their own
// unique index so registration can reject a clash on either half of the login pair.
type DonorModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(100);not null"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone          string `gorm:"type:varchar(30);not null;uniqueIndex"`
	BloodType      string `gorm:"type:varchar(3);not null"`
	MedicalHistory string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonorModel) TableName() string {
	return "donors"
}
