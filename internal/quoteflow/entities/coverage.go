package entities

// Coverage is one selectable coverage line with its option set and the
// value applied when the applicant has made no selection yet.
type Coverage struct {
	Name    string
	Label   string
	Options []string
	Default string
}

// PolicyCoverages apply once per policy.
var PolicyCoverages = []Coverage{
	{
		Name:    "bodilyInjury",
		Label:   "Bodily Injury",
		Options: []string{"25/50", "50/100", "100/200", "100/300", "250/500", "500/1000"},
		Default: "100/300",
	},
	{
		Name:    "combinedSingleLimits",
		Label:   "Combined Single Limits",
		Options: []string{"No Coverage", "$50,000", "$100,000", "$200,000", "$300,000", "$500,000", "$1,000,000"},
		Default: "No Coverage",
	},
	{
		Name:    "propertyDamageLiability",
		Label:   "Property Damage Liability",
		Options: []string{"25,000", "50,000", "100,000", "200,000", "300,000", "500,000"},
		Default: "50,000",
	},
	{
		Name:    "uninsuredMotorist",
		Label:   "Uninsured/Underinsured Motorist",
		Options: []string{"25/50", "50/100", "100/200", "100/300", "250/500", "500/1000"},
		Default: "100/300",
	},
	{
		Name:    "firstAccidentForgiveness",
		Label:   "First Accident Forgiveness",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "extendedNonOwnedCoverage",
		Label:   "Extended Non-Owned Coverage",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "medicalPayments",
		Label:   "Medical Payments",
		Options: []string{"No Coverage", "1,000", "2,500", "5,000", "10,000", "25,000"},
		Default: "5,000",
	},
}

// VehicleCoverages apply per vehicle. Their store keys are composed with the
// vehicle id, so two vehicles never share a selection.
var VehicleCoverages = []Coverage{
	{
		Name:    "uninsuredMotoristsPropertyDamage",
		Label:   "Uninsured/Underinsured Motorists Property Damage",
		Options: []string{"No Coverage", "$3,500", "$5,000", "$10,000", "$15,000", "$25,000"},
		Default: "No Coverage",
	},
	{
		Name:    "collision",
		Label:   "Collision",
		Options: []string{"No Coverage", "$250 Deductible", "$500 Deductible", "$1000 Deductible", "$2500 Deductible"},
		Default: "$1000 Deductible",
	},
	{
		Name:    "comprehensive",
		Label:   "Comprehensive",
		Options: []string{"No Coverage", "$250 Deductible", "$500 Deductible", "$1000 Deductible", "$2500 Deductible"},
		Default: "$1000 Deductible",
	},
	{
		Name:    "autoLoanLease",
		Label:   "Auto Loan/Lease",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "roadsideAssistance",
		Label:   "Roadside Assistance",
		Options: []string{"No Coverage", "75", "100", "150", "200"},
		Default: "75",
	},
	{
		Name:    "customizingEquipment",
		Label:   "Customizing Equipment",
		Options: []string{"No Coverage", "Included/1000", "Included/2500", "Included/5000"},
		Default: "Included/1000",
	},
	{
		Name:    "customAudioSystem",
		Label:   "Custom Audio System",
		Options: []string{"No Coverage", "Included/1000", "Included/2500", "Included/5000"},
		Default: "Included/1000",
	},
	{
		Name:    "transportationExpense",
		Label:   "Transportation Expense",
		Options: []string{"No Coverage", "20 day/600 max", "30 day/900 max", "45 day/1350 max"},
		Default: "20 day/600 max",
	},
	{
		Name:    "autoReplacement",
		Label:   "Auto Replacement",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "originalEquipmentManufacturers",
		Label:   "Original Equipment Manufacturers Coverage",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "mexicoCoverage",
		Label:   "Mexico Coverage",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "rideSharing",
		Label:   "Ride Sharing",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "portableElectronicMedia",
		Label:   "Portable Electronic Media",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "tripInterruption",
		Label:   "Trip Interruption",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
	{
		Name:    "diminishingDeductible",
		Label:   "Diminishing Deductible",
		Options: []string{"No Coverage", "Included"},
		Default: "No Coverage",
	},
}

// FieldStore is the slice of the form store the coverage matrix needs.
type FieldStore interface {
	Get(name string) string
	Set(name string, value any)
}

// ApplyCoverageDefaults fills every unselected policy coverage and every
// unselected per-vehicle coverage cell. Existing selections are never
// overwritten.
func ApplyCoverageDefaults(s FieldStore, vehicles []Vehicle) {
	for _, c := range PolicyCoverages {
		if s.Get(c.Name) == "" {
			s.Set(c.Name, c.Default)
		}
	}
	for _, v := range vehicles {
		for _, c := range VehicleCoverages {
			key := ComposeKey(c.Name, v.ID)
			if s.Get(key) == "" {
				s.Set(key, c.Default)
			}
		}
	}
}
