package entities

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Driver is one rated or listed household driver. The entry at index 0 is
// always the primary applicant and is kept in sync with the identity fields
// collected on the first step.
type Driver struct {
	ID                    string `json:"id"`
	FirstName             string `json:"firstName"`
	MiddleName            string `json:"middleName"`
	LastName              string `json:"lastName"`
	BirthDate             string `json:"birthDate"`
	Gender                string `json:"gender"`
	MaritalStatus         string `json:"maritalStatus"`
	RelationshipToInsured string `json:"relationshipToInsured"`
	DriverType            string `json:"driverType"`
	LicenseState          string `json:"licenseState"`
	LicenseNumber         string `json:"licenseNumber"`
	AgeWhenFirstLicensed  string `json:"ageWhenFirstLicensed"`
	LicenseSuspended      string `json:"licenseSuspended"`
	SR22Filing            string `json:"sr22Filing"`
	IsPrimary             bool   `json:"isPrimary"`
}

// NewDriver returns an empty non-primary driver with a fresh id.
func NewDriver() Driver {
	return Driver{ID: uuid.NewString(), SR22Filing: "No"}
}

// PrimaryApplicant carries the identity fields collected on an earlier step
// that seed driver index 0. All values are plain strings read from the
// form store.
type PrimaryApplicant struct {
	FirstName     string
	LastName      string
	DateOfBirth   string
	Gender        string
	MaritalStatus string
	State         string
	LicenseNumber string
}

// SeedPrimaryDriver returns the driver list with index 0 built from the
// primary applicant's identity. With no existing drivers it creates the
// single primary entry. With existing drivers it re-syncs the identity
// fields into index 0 while preserving the fields that have no external
// source (middle name, age first licensed, license suspended, SR-22).
func SeedPrimaryDriver(existing []Driver, primary PrimaryApplicant) []Driver {
	seeded := Driver{
		ID:                    "driver_1",
		FirstName:             primary.FirstName,
		LastName:              primary.LastName,
		BirthDate:             primary.DateOfBirth,
		Gender:                primary.Gender,
		MaritalStatus:         primary.MaritalStatus,
		RelationshipToInsured: "Insured",
		DriverType:            "Rated",
		LicenseState:          primary.State,
		LicenseNumber:         primary.LicenseNumber,
		SR22Filing:            "No",
		IsPrimary:             true,
	}
	if len(existing) == 0 {
		return []Driver{seeded}
	}

	out := make([]Driver, len(existing))
	copy(out, existing)
	prev := out[0]
	seeded.ID = prev.ID
	if seeded.ID == "" {
		seeded.ID = "driver_1"
	}
	seeded.MiddleName = prev.MiddleName
	seeded.AgeWhenFirstLicensed = prev.AgeWhenFirstLicensed
	seeded.LicenseSuspended = prev.LicenseSuspended
	if prev.SR22Filing != "" {
		seeded.SR22Filing = prev.SR22Filing
	}
	out[0] = seeded
	return out
}

func DecodeDrivers(raw string) ([]Driver, error) {
	if raw == "" {
		return nil, nil
	}
	var drivers []Driver
	if err := json.Unmarshal([]byte(raw), &drivers); err != nil {
		return nil, fmt.Errorf("decode drivers: %w", err)
	}
	return drivers, nil
}

func EncodeDrivers(drivers []Driver) string {
	if drivers == nil {
		drivers = []Driver{}
	}
	raw, err := json.Marshal(drivers)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// RemoveDriver drops the driver with the given id. The primary entry is
// never removable.
func RemoveDriver(drivers []Driver, id string) []Driver {
	out := drivers[:0:0]
	for _, d := range drivers {
		if d.ID == id && !d.IsPrimary {
			continue
		}
		out = append(out, d)
	}
	return out
}
