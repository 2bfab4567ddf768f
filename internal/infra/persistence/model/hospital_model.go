package model

import "time"

// HospitalModel mirrors the 'hospitals' table. Uniqueness rules match the
// donor table: either half of the (email, phone) login pair must be unused.
type HospitalModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);not null"`
	Email         string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone         string `gorm:"type:varchar(30);not null;uniqueIndex"`
	Address       string `gorm:"type:text;not null"`
	ContactPerson string `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (HospitalModel) TableName() string {
	return "hospitals"
}
