package relation

import "fmt"

// DonorType classifies a donor. Only the three enumerated values are valid.
type DonorType string

const (
	DonorIndividual   DonorType = "Individual"
	DonorOrganization DonorType = "Organization"
	DonorCorporate    DonorType = "Corporate"
)

// Valid reports whether t is one of the enumerated donor types.
func (t DonorType) Valid() bool {
	switch t {
	case DonorIndividual, DonorOrganization, DonorCorporate:
		return true
	}
	return false
}

// ParseDonorType parses a donor type from its exact text form.
func ParseDonorType(s string) (DonorType, error) {
	t := DonorType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid donor type %q (want Individual, Organization, or Corporate)", s)
	}
	return t, nil
}

// Donor is immutable reference data: who gave, and what kind of giver.
type Donor struct {
	ID   string
	Type DonorType
}

// Assignment is a humanitarian project record. Impact is rated on a 0-10
// scale, stored in tenths.
type Assignment struct {
	ID             string
	Name           string
	Region         string
	DurationMonths int64
	Budget         Money
	Impact         Impact
}

// Donation is an immutable fact record linking one donor to one assignment.
// Amount is non-negative once a snapshot has been validated.
type Donation struct {
	ID           string
	AssignmentID string
	DonorID      string
	Amount       Money
}
