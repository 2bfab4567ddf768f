// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of identity interacting with the system.
// Each role authenticates against its own identity set; numeric ids are
// only meaningful within a single role.
type Role string

const (
	// RoleDonor indicates a registered blood donor.
	RoleDonor Role = "donor"
	// RoleHospital indicates a registered hospital.
	RoleHospital Role = "hospital"
	// RoleAdmin indicates a system administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleHospital, RoleAdmin:
		return true
	default:
		return false
	}
}
