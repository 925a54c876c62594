package entities

// HouseholdMember is a driver reported against the household address in
// carrier records. The applicant resolves each one with a relationship.
type HouseholdMember struct {
	ID           string
	Name         string
	Relationship string
	Gender       string
	Birthdate    string
}

// HouseholdVehicle is a vehicle reported against the household address.
type HouseholdVehicle struct {
	ID    string
	Year  int
	Make  string
	Model string
	VIN   string
}

// SampleHouseholdMembers is the roster returned by the carrier-records
// lookup. Birth years are real, the rest of the date is masked.
var SampleHouseholdMembers = []HouseholdMember{
	{ID: "driver1", Name: "SARAH THOMPSON", Relationship: "<Select>", Gender: "Female", Birthdate: "**/*/1985"},
	{ID: "driver2", Name: "MICHAEL RODRIGUEZ", Relationship: "<Select>", Gender: "Male", Birthdate: "**/*/2005"},
	{ID: "driver3", Name: "JESSICA CHEN", Relationship: "<Select>", Gender: "Female", Birthdate: "**/*/1992"},
}

// SampleHouseholdVehicles is the vehicle roster from the same lookup.
var SampleHouseholdVehicles = []HouseholdVehicle{
	{ID: "vehicle1", Year: 2021, Make: "TOYOTA", Model: "CAMRY SE", VIN: "4T1G11AK5MU123456"},
	{ID: "vehicle2", Year: 2020, Make: "HONDA", Model: "CR-V EX", VIN: "2HKRW2H85LH654321"},
	{ID: "vehicle3", Year: 2019, Make: "FORD", Model: "F-150 XLT", VIN: "1FTEW1EP5KFC987654"},
}

// RelationshipOptions resolve a household member against the applicant.
var RelationshipOptions = []string{
	"<Select>",
	"Resident Spouse/Partner/Relative",
	"Child",
	"Roommate",
	"Does not live at the address",
	"Duplicate Operator",
	"Unknown - Customer does not know this operator",
	"Deceased",
	"Other",
}

// Store key prefixes for household selections, composed with the member or
// vehicle id.
const (
	HouseholdDriverKey       = "selectedDriver"
	HouseholdVehicleKey      = "selectedVehicle"
	HouseholdRelationshipKey = "driverRelationship"
)

// SelectedHouseholdVehicles returns the roster vehicles the applicant has
// checked, in roster order.
func SelectedHouseholdVehicles(s interface{ Truthy(string) bool }) []HouseholdVehicle {
	var out []HouseholdVehicle
	for _, v := range SampleHouseholdVehicles {
		if s.Truthy(ComposeKey(HouseholdVehicleKey, v.ID)) {
			out = append(out, v)
		}
	}
	return out
}
