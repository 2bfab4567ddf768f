package entity

// BloodType is one of the eight ABO/Rh blood groups.
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
)

// String returns the string representation of the BloodType.
func (b BloodType) String() string {
	return string(b)
}

// IsValid checks if the BloodType is one of the eight valid groups.
func (b BloodType) IsValid() bool {
	switch b {
	case BloodAPos, BloodANeg, BloodBPos, BloodBNeg,
		BloodABPos, BloodABNeg, BloodOPos, BloodONeg:
		return true
	default:
		return false
	}
}
