// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Donor is the identity record of a registered blood donor.
// Donors authenticate by the exact (email, phone) pair; the pair is unique
// within the donor identity set.
type Donor struct {
	ID             int64     // Identifier within the donor identity set.
	Name           string    // The donor's display name.
	Email          string    // Login identifier, immutable after registration.
	Phone          string    // Second half of the login pair, mutable via profile update.
	BloodType      BloodType // Immutable after registration.
	MedicalHistory string    // Free-text medical history, mutable via profile update.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// seriousConditions are the medical-history keywords that defer a donor for
// manual review before their donations are accepted.
var seriousConditions = []string{
	"hiv",
	"aids",
	"hepatitis",
	"cancer",
	"heart disease",
	"malaria",
	"ebola",
	"hemophilia",
	"tuberculosis",
}

// FlaggedForReview reports whether the donor's medical history mentions a
// serious condition. Informational only; registration is never rejected on
// this basis.
func (d *Donor) FlaggedForReview() bool {
	return ScreenMedicalHistory(d.MedicalHistory)
}

// ScreenMedicalHistory reports whether a medical-history text mentions any
// serious condition.
func ScreenMedicalHistory(history string) bool {
	if history == "" {
		return false
	}

	lower := strings.ToLower(history)
	for _, condition := range seriousConditions {
		if strings.Contains(lower, condition) {
			return true
		}
	}

	return false
}
