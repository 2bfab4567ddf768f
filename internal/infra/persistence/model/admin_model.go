package model

import "time"

// AdminModel mirrors the 'admins' table. Password stores a bcrypt hash only.
type AdminModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
