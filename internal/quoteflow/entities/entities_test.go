package entities

import (
	"strings"
	"testing"
	"time"
)

func TestComposeAndParseKey(t *testing.T) {
	key := ComposeKey("collision", "abc-123")
	if key != "collision_abc-123" {
		t.Fatalf("ComposeKey = %q", key)
	}
	base, id, ok := ParseKey(key)
	if !ok || base != "collision" || id != "abc-123" {
		t.Fatalf("ParseKey = %q %q %v", base, id, ok)
	}
}

func TestParseKeyMalformed(t *testing.T) {
	for _, raw := range []string{"", "collision", "_abc"} {
		if _, _, ok := ParseKey(raw); ok {
			t.Fatalf("ParseKey(%q) unexpectedly ok", raw)
		}
	}
}

func TestClaimsRoundTrip(t *testing.T) {
	claims := []Claim{
		{ID: "c1", DateOfLoss: "2023-04-01", Loss: "Hail", Amount: "2500", Description: "roof"},
	}
	raw := EncodeClaims(claims)
	got, err := DecodeClaims(raw)
	if err != nil {
		t.Fatalf("DecodeClaims: %v", err)
	}
	if len(got) != 1 || got[0].Loss != "Hail" {
		t.Fatalf("round trip = %+v", got)
	}
}

func TestDecodeClaimsEmptyAndBad(t *testing.T) {
	if got, err := DecodeClaims(""); err != nil || got != nil {
		t.Fatalf("empty = %v, %v", got, err)
	}
	if _, err := DecodeClaims("{not json"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEncodeClaimsNilIsEmptyArray(t *testing.T) {
	if got := EncodeClaims(nil); got != "[]" {
		t.Fatalf("EncodeClaims(nil) = %q", got)
	}
}

func TestSeedPrimaryDriverFromEmptyList(t *testing.T) {
	primary := PrimaryApplicant{FirstName: "Jane"}
	drivers := SeedPrimaryDriver(nil, primary)
	if len(drivers) != 1 {
		t.Fatalf("got %d drivers", len(drivers))
	}
	d := drivers[0]
	if d.FirstName != "Jane" || d.RelationshipToInsured != "Insured" || !d.IsPrimary {
		t.Fatalf("seeded driver = %+v", d)
	}
	if d.DriverType != "Rated" {
		t.Fatalf("DriverType = %q", d.DriverType)
	}
}

func TestSeedPrimaryDriverPreservesManualFields(t *testing.T) {
	existing := []Driver{
		{
			ID:                    "driver_1",
			FirstName:             "Jan",
			MiddleName:            "Q",
			AgeWhenFirstLicensed:  "16",
			LicenseSuspended:      "No",
			SR22Filing:            "Yes",
			RelationshipToInsured: "Insured",
			IsPrimary:             true,
		},
		{ID: "d2", FirstName: "Sam"},
	}
	drivers := SeedPrimaryDriver(existing, PrimaryApplicant{FirstName: "Jane", LastName: "Doe"})
	if len(drivers) != 2 {
		t.Fatalf("got %d drivers", len(drivers))
	}
	d := drivers[0]
	if d.FirstName != "Jane" || d.LastName != "Doe" {
		t.Fatalf("primary not re-synced: %+v", d)
	}
	if d.MiddleName != "Q" || d.AgeWhenFirstLicensed != "16" || d.SR22Filing != "Yes" {
		t.Fatalf("manual fields clobbered: %+v", d)
	}
	if drivers[1].FirstName != "Sam" {
		t.Fatalf("secondary driver lost: %+v", drivers[1])
	}
}

func TestRemoveDriverGuardsPrimary(t *testing.T) {
	drivers := []Driver{
		{ID: "driver_1", IsPrimary: true},
		{ID: "d2"},
	}
	got := RemoveDriver(drivers, "driver_1")
	if len(got) != 2 {
		t.Fatalf("primary was removed: %+v", got)
	}
	got = RemoveDriver(drivers, "d2")
	if len(got) != 1 || got[0].ID != "driver_1" {
		t.Fatalf("RemoveDriver = %+v", got)
	}
}

func TestRemoveVehicleKeepsFloor(t *testing.T) {
	one := []Vehicle{{ID: "v1"}}
	if got := RemoveVehicle(one, "v1"); len(got) != 1 {
		t.Fatalf("last vehicle removed: %+v", got)
	}
	two := []Vehicle{{ID: "v1"}, {ID: "v2"}}
	got := RemoveVehicle(two, "v1")
	if len(got) != 1 || got[0].ID != "v2" {
		t.Fatalf("RemoveVehicle = %+v", got)
	}
}

func TestVehicleYears(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	years := VehicleYears(now)
	if years[0] != "(Select)" || years[1] != "2026" {
		t.Fatalf("years start = %v", years[:2])
	}
	if years[len(years)-1] != "Older" || years[len(years)-2] != "2001" {
		t.Fatalf("years end = %v", years[len(years)-2:])
	}
	if len(years) != 28 {
		t.Fatalf("len(years) = %d", len(years))
	}
}

func TestVehicleLabel(t *testing.T) {
	v := Vehicle{ModelYear: "2021", Make: "Toyota", Model: "Camry"}
	if got := v.Label(); got != "2021 Toyota Camry" {
		t.Fatalf("Label = %q", got)
	}
	if got := (Vehicle{}).Label(); got != "New Vehicle" {
		t.Fatalf("empty Label = %q", got)
	}
}

type fakeStore map[string]string

func (f fakeStore) Get(name string) string { return f[name] }

func (f fakeStore) Set(name string, value any) {
	if s, ok := value.(string); ok {
		f[name] = s
	}
}

func (f fakeStore) Truthy(name string) bool { return f[name] != "" && f[name] != "false" }

func TestApplyCoverageDefaults(t *testing.T) {
	s := fakeStore{"bodilyInjury": "250/500"}
	vehicles := []Vehicle{{ID: "v1"}, {ID: "v2"}}
	ApplyCoverageDefaults(s, vehicles)

	if s["bodilyInjury"] != "250/500" {
		t.Fatalf("existing selection overwritten: %q", s["bodilyInjury"])
	}
	if s["propertyDamageLiability"] != "50,000" {
		t.Fatalf("propertyDamageLiability = %q", s["propertyDamageLiability"])
	}
	if s["collision_v1"] != "$1000 Deductible" || s["collision_v2"] != "$1000 Deductible" {
		t.Fatalf("collision defaults = %q %q", s["collision_v1"], s["collision_v2"])
	}
	if s["roadsideAssistance_v2"] != "75" {
		t.Fatalf("roadsideAssistance_v2 = %q", s["roadsideAssistance_v2"])
	}
	if s["mexicoCoverage_v1"] != "No Coverage" {
		t.Fatalf("mexicoCoverage_v1 = %q", s["mexicoCoverage_v1"])
	}
}

func TestCoverageCatalogDefaultsAreValidOptions(t *testing.T) {
	check := func(t *testing.T, list []Coverage) {
		t.Helper()
		for _, c := range list {
			found := false
			for _, opt := range c.Options {
				if opt == c.Default {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s: default %q not in options %v", c.Name, c.Default, c.Options)
			}
		}
	}
	check(t, PolicyCoverages)
	check(t, VehicleCoverages)
}

func TestSelectedHouseholdVehicles(t *testing.T) {
	s := fakeStore{"selectedVehicle_vehicle2": "true"}
	got := SelectedHouseholdVehicles(s)
	if len(got) != 1 || got[0].Make != "HONDA" {
		t.Fatalf("selected = %+v", got)
	}
}

func TestNewDriverDefaults(t *testing.T) {
	d := NewDriver()
	if d.ID == "" || d.SR22Filing != "No" {
		t.Fatalf("NewDriver = %+v", d)
	}
}

func TestNewVehicleHasID(t *testing.T) {
	v := NewVehicle()
	if v.ID == "" || strings.Contains(v.ID, "_") {
		t.Fatalf("NewVehicle.ID = %q", v.ID)
	}
}
