package entity

import "time"

// Hospital is the identity record of a registered hospital.
// Hospitals authenticate by the exact (email, phone) pair, unique within the
// hospital identity set.
type Hospital struct {
	ID            int64  // Identifier within the hospital identity set.
	Name          string // The hospital's official name.
	Email         string // Login identifier, immutable after registration.
	Phone         string
	Address       string
	ContactPerson string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
