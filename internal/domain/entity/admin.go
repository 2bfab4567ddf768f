package entity

import "time"

// Admin is a system administrator account. Unlike donors and hospitals,
// admins authenticate with a username and a bcrypt-hashed password.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash; never serialized into responses.
	CreatedAt    time.Time
}
