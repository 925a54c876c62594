package schema

// USStates is the select-option list shared by every address and license
// field in the builtin catalog.
var USStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut", "Delaware",
	"Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky",
	"Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey", "New Mexico",
	"New York", "North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon", "Pennsylvania",
	"Rhode Island", "South Carolina", "South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// PlaceholderOption is the inert first entry of most select lists. It never
// counts as a value.
const PlaceholderOption = "(Select)"

// LossTypes is the claim loss catalog for the home claims step.
var LossTypes = []string{
	PlaceholderOption, "All Other", "Contamination", "Credit Card", "Damage To Property Of Others",
	"Dog Bite (Liability)", "Earthquake", "Earth Movement", "Extended Coverage", "Perils",
	"Fire", "Flood", "Freezing Water (Including Burst Pipes)", "Hail", "Hurricane",
	"Liability (All Other)", "Lightning", "Medical Payments", "Mysterious Disappearance",
	"Property", "Physical Damage (All Other)", "Slip/Fall (Liability)", "Smoke",
	"Theft Scheduled Property", "Theft/Burglary", "Tornado", "Vandalism/Malicious Mischief",
	"Water Damage", "Wind", "Worker's Compensation",
}

// Builtin returns the catalog of shipped quote types. It is constructed
// fresh per call; callers treat the result as immutable.
func Builtin() *Catalog {
	return NewCatalog(homeQuote(), autoQuote())
}

func homeQuote() QuoteType {
	return QuoteType{
		ID:                  "home-quote",
		Name:                "Home Insurance Quote",
		BasePremium:         1200,
		VariationMultiplier: 3,
		VariationModulus:    400,
		TermMonths:          12,
		StartDateField:      "desiredCoverageStartDate",
		Steps: []Step{
			{
				ID:          1,
				Title:       "About You & Property Information",
				Description: "Tell us about yourself and your property",
				Role:        RolePlain,
				Fields: []Field{
					{Name: "firstName", Label: "First Name", Type: FieldText, Required: true, Group: "name", Width: "35%"},
					{Name: "middleInitial", Label: "MI", Type: FieldText, Group: "name", Width: "12%"},
					{Name: "lastName", Label: "Last Name", Type: FieldText, Required: true, Group: "name", Width: "28%"},
					{Name: "suffix", Label: "Suffix", Type: FieldSelect, Options: []string{PlaceholderOption, "Jr.", "Sr.", "II", "III", "IV"}, Group: "name", Width: "12%"},
					{Name: "phoneNumber", Label: "Phone Number", Type: FieldPhone, Placeholder: "(123) 456-7890", Group: "contact", Width: "40%"},
					{Name: "emailAddress", Label: "Email Address", Type: FieldEmail, Placeholder: "your.email@example.com", Group: "contact", Width: "50%"},
					{Name: "dateOfBirth", Label: "Applicant's Date of Birth", Type: FieldDate, Placeholder: "mm-dd-yyyy"},
					{Name: "streetAddress", Label: "Street Address", Type: FieldText, Required: true, Placeholder: "Enter your street address"},
					{Name: "addressLine2", Label: "Address Line 2", Type: FieldText, Placeholder: "Apartment, suite, etc. (optional)"},
					{Name: "city", Label: "City", Type: FieldText, Required: true, Group: "address", Width: "35%"},
					{Name: "state", Label: "State", Type: FieldSelect, Required: true, Options: USStates, Group: "address", Width: "28%"},
					{Name: "zipCode", Label: "Zip Code", Type: FieldText, Required: true, Placeholder: "12345", Group: "address", Width: "25%"},
					{Name: "desiredCoverageStartDate", Label: "Desired Coverage Start Date", Type: FieldDate},
					{Name: "policyType", Label: "Policy Type", Type: FieldSelect, Options: []string{PlaceholderOption, "H03 or DP3", "H04", "H05", "H06"}},
					{Name: "currentInsurance", Label: "Do you currently have insurance on this property?", Type: FieldRadio, Options: []string{"Yes", "No"}},
					{Name: "newConstruction", Label: "Check box if New Construction and home less than 30 days old", Type: FieldCheckbox},
				},
			},
			{
				ID:          2,
				Title:       "Property Information",
				Description: "Tell us about your property",
				Role:        RolePlain,
				Fields: []Field{
					{Name: "generalPropertyInfo", Label: "General Property Information", Type: FieldSection},
					{Name: "homeType", Label: "Home Type", Type: FieldSelect, Required: true, Options: []string{PlaceholderOption, "Single-family house", "Duplex", "Triplex", "Quadplex", "Townhouse", "Row house", "Mobile home", "Trailer home"}},
					{Name: "yearBuilt", Label: "Original Year of Construction", Type: FieldText, Required: true, Placeholder: "YYYY"},
					{Name: "squareFootage", Label: "Total Living Area Square Footage", Type: FieldText, Required: true, Placeholder: "Enter square footage"},
					{Name: "constructionType", Label: "Construction Type", Type: FieldSelect, Required: true, Options: []string{PlaceholderOption, "EIFS (synthetic stucco)", "Frame", "Masonry", "Masonry veneer", "Mixed masonry frame (33% or less)", "Mixed masonry frame (34% or more)", "Superior"}},
					{Name: "foundationType", Label: "Type of Foundation", Type: FieldSelect, Required: true, Options: []string{PlaceholderOption, "Slab", "Basement", "Crawlspace", "Open partial basement", "Peer and post, stilts"}},
					{Name: "numberOfStories", Label: "Number of Stories", Type: FieldSelect, Options: []string{"1", "2", "3", "4+"}, Group: "structure", Width: "33%"},
					{Name: "numberOfFamilies", Label: "Number of Families", Type: FieldSelect, Options: []string{"1", "2", "3", "4"}, Group: "structure", Width: "33%"},
					{Name: "electricalCircuitAmps", Label: "Electrical Circuit Amps", Type: FieldSelect, Options: []string{PlaceholderOption, "Less than 100", "100 to 149", "150 and above"}, Group: "structure", Width: "34%"},
					{Name: "roofShape", Label: "Roof Shape", Type: FieldSelect, Options: []string{PlaceholderOption, "Gable", "Hip", "Flat", "Gambrel", "Mansard", "Shed", "Other"}, Group: "roof", Width: "50%"},
					{Name: "roofMaterial", Label: "Roof Material", Type: FieldSelect, Options: []string{PlaceholderOption, "Clay tile", "Cement tile", "Shingle", "Asbestos", "Metal", "Slate", "Wood shake", "Wood shingle", "Tar gravel", "Other"}, Group: "roof", Width: "50%"},
					{Name: "roofReplaced", Label: "Has your roof ever been replaced?", Type: FieldSelect, Options: []string{PlaceholderOption, "Yes", "No"}, Group: "roofHistory", Width: "50%"},
					{Name: "roofReplacementYear", Label: "What year was your roof replaced?", Type: FieldText, Placeholder: "YYYY", Group: "roofHistory", Width: "50%"},
					{Name: "primaryPlumbingType", Label: "Primary Plumbing Type", Type: FieldSelect, Options: []string{PlaceholderOption, "Copper", "PEX", "PVC", "Other", "Full or partial galvanized", "Full or partial poly butylene"}},
					{Name: "swimmingPool", Label: "Swimming Pool", Type: FieldSelect, Options: []string{PlaceholderOption, "None", "Above ground", "In ground", "Hot tub/spa only"}, Group: "utilities", Width: "50%"},
					{Name: "screenedEnclosure", Label: "Screened Enclosure", Type: FieldSelect, Options: []string{PlaceholderOption, "Yes", "No"}, Group: "utilities", Width: "50%"},
					{Name: "occupancySection", Label: "Occupancy", Type: FieldSection},
					{Name: "occupancy", Label: "Occupancy", Type: FieldSelect, Options: []string{PlaceholderOption, "Owner", "Tenant", "Vacant", "Unoccupied", "Primary", "Seasonal"}, Group: "occupancyInfo", Width: "50%"},
					{Name: "primaryOrSeasonal", Label: "Primary or Seasonal", Type: FieldSelect, Options: []string{PlaceholderOption, "Primary", "Seasonal"}, Group: "occupancyInfo", Width: "50%"},
					{Name: "rentalFrequency", Label: "Rental Frequency", Type: FieldSelect, Options: []string{PlaceholderOption, "Not rented", "Daily", "2-6 nights", "Weekly", "Monthly", "Annually"}},
					{Name: "securedCommunitySection", Label: "Security", Type: FieldSection},
					{Name: "securityPatrol24Hour", Label: "24-Hour Security Patrol", Type: FieldCheckbox, Group: "security", Width: "25%"},
					{Name: "securityGates24Hour", Label: "24-Hour Manned Security Gates", Type: FieldCheckbox, Group: "security", Width: "25%"},
					{Name: "singleEntryCommunity", Label: "Single Entry Community", Type: FieldCheckbox, Group: "security", Width: "25%"},
					{Name: "passkeyGates", Label: "Passkey Gates", Type: FieldCheckbox, Group: "security", Width: "25%"},
					{Name: "burglarAlarm", Label: "Burglar Alarm", Type: FieldSelect, Options: []string{PlaceholderOption, "None", "Non-local only", "Central"}, Group: "alarms", Width: "33%"},
					{Name: "fireAlarm", Label: "Fire Alarm", Type: FieldSelect, Options: []string{PlaceholderOption, "None", "Non-local only", "Central"}, Group: "alarms", Width: "33%"},
					{Name: "sprinklerSystem", Label: "Sprinkler System", Type: FieldSelect, Options: []string{PlaceholderOption, "None", "Non-partial (class A)", "Full (class B)"}, Group: "alarms", Width: "34%"},
					{Name: "windMitigationSection", Label: "Wind Mitigation", Type: FieldSection},
					{Name: "windMitigationForm", Label: "Wind Mitigation Form", Type: FieldSelect, Options: []string{PlaceholderOption, "Assumed Values", "Completed Form Available"}, Group: "windMitigation", Width: "50%"},
					{Name: "roofCovering", Label: "Roof Covering", Type: FieldSelect, Options: []string{PlaceholderOption, "FBC Equivalent", "Non-FBC Equivalent"}, Group: "windMitigation", Width: "50%"},
					{Name: "roofDeckAttachment", Label: "Roof Deck Attachment", Type: FieldSelect, Options: []string{PlaceholderOption, `6d @ 6"/12`, `8d @ 6"/12`, `8d @ 6"/6`, "Reinforced Concrete"}, Group: "windDetails", Width: "50%"},
					{Name: "roofWallAttachment", Label: "Roof Wall Attachment", Type: FieldSelect, Options: []string{PlaceholderOption, "Toe Nails", "Clips", "Single Wraps", "Double Wraps"}, Group: "windDetails", Width: "50%"},
					{Name: "swr", Label: "SWR", Type: FieldSelect, Options: []string{PlaceholderOption, "Yes SWR", "No SWR"}},
					{Name: "openingProtection", Label: "Opening Protection", Type: FieldSelect, Options: []string{PlaceholderOption, "Class A", "Class B", "Class C", "Unknown"}},
				},
			},
			{
				ID:          3,
				Title:       "Claims Information",
				Description: "Tell us about any previous losses or claims",
				Role:        RoleClaims,
				Fields: []Field{
					{Name: "claimsInfoSection", Label: "Claims Info", Type: FieldSection},
					{Name: "hadLossesLast5Years", Label: "Have you had any losses, whether or not paid by insurance, during the last 5 years at this or any other location?", Type: FieldRadio, Required: true, Options: []string{"Yes", "No"}},
					{Name: "sinkholeOrEarthMovement", Label: "Does the applicant or co-applicant have any knowledge of any sinkhole loss or any other earth movement loss at the insured location, including the residence premises, other structures, or grounds to be insured?", Type: FieldRadio, Required: true, Options: []string{"Yes", "No"}},
					{Name: "claims", Label: "Claim Details", Type: FieldClaims, Options: LossTypes},
				},
			},
			{
				ID:          4,
				Title:       "Coverage Information",
				Description: "Select your coverage preferences",
				Role:        RoleCoverage,
				Fields: []Field{
					{Name: "dwellingLimit", Label: "Dwelling Limit (A)", Type: FieldCurrency, Required: true, Placeholder: "Enter dwelling limit"},
					{Name: "otherStructures", Label: "Other Structures (Coverage B)", Type: FieldPctOfBase, BaseField: "dwellingLimit", Percentage: 10, Options: []string{"2%", "5%", "10%", "15%", "20%"}},
					{Name: "personalProperty", Label: "Personal Property / Contents (Coverage C)", Type: FieldPctOfBase, BaseField: "dwellingLimit", Percentage: 25, Options: []string{"25%", "50%", "75%", "100%"}},
					{Name: "lossOfUse", Label: "Loss of Use (Coverage D)", Type: FieldPctOfBase, BaseField: "dwellingLimit", Percentage: 20, Options: []string{"10%", "20%", "30%", "40%"}},
					{Name: "replacementCostPersonalProperty", Label: "Replacement Cost on Personal Property / Contents", Type: FieldSelect, Options: []string{"Included", "Not Included", "Actual Cash Value"}},
					{Name: "personalLiability", Label: "Personal Liability", Type: FieldSelect, Required: true, Options: []string{"Excluded", "$100,000", "$300,000", "$400,000", "$500,000"}},
					{Name: "medicalPayments", Label: "Medical Payments", Type: FieldSelect, Required: true, Options: []string{"Excluded", "2%", "5%", "10%"}},
					{Name: "allOtherPerilsDeductible", Label: "All Other Perils Deductible", Type: FieldSelect, Required: true, Options: []string{"$500", "$1,000", "$2,500", "$5,000", "$10,000"}},
					{Name: "hurricaneDeductible", Label: "Hurricane Deductible", Type: FieldPctOfBase, BaseField: "dwellingLimit", Percentage: 2, Options: []string{"2%", "5%", "10%"}},
					{Name: "waterBackupLimit", Label: "Water Backup and Sump Overflow Limit", Type: FieldSelect, Options: []string{"No Coverage", "$5,000"}},
					{Name: "waterCoverage", Label: "Water Coverage", Type: FieldSelect, Options: []string{"Limited - $10,000"}},
					{Name: "roofCoverage", Label: "Roof Coverage", Type: FieldSelect, Options: []string{"Replacement Cost-HO3 Only", "Stated Value/BCV"}},
				},
			},
		},
	}
}

func autoQuote() QuoteType {
	return QuoteType{
		ID:                  "auto-quote",
		Name:                "Auto Insurance Quote",
		BasePremium:         800,
		VariationMultiplier: 3,
		VariationModulus:    400,
		TermMonths:          6,
		StartDateField:      "policyStartDate",
		Steps: []Step{
			{
				ID:          1,
				Title:       "Driver Information",
				Description: "Tell us about the primary driver",
				Role:        RolePlain,
				Fields: []Field{
					{Name: "firstName", Label: "First Name", Type: FieldText, Required: true, Group: "name", Width: "50%"},
					{Name: "lastName", Label: "Last Name", Type: FieldText, Required: true, Group: "name", Width: "50%"},
					{Name: "dateOfBirth", Label: "Date of Birth", Type: FieldDate, Required: true},
					{Name: "gender", Label: "Gender", Type: FieldSelect, Options: []string{PlaceholderOption, "Male", "Female", "Non-binary", "Prefer not to say"}, Group: "person", Width: "50%"},
					{Name: "maritalStatus", Label: "Marital Status", Type: FieldSelect, Options: []string{PlaceholderOption, "Single", "Married", "Divorced", "Widowed", "Separated", "Domestic Partner"}, Group: "person", Width: "50%"},
					{Name: "licenseNumber", Label: "Driver License Number", Type: FieldText, Required: true},
					{Name: "state", Label: "State (where vehicle is primarily garaged)", Type: FieldSelect, Required: true, Options: USStates},
				},
			},
			{
				ID:          2,
				Title:       "Household Drivers",
				Description: "All household members of driving age must be listed",
				Role:        RoleDrivers,
				Fields: []Field{
					{Name: "drivers", Label: "Drivers", Type: FieldDrivers, Required: true},
					{Name: "householdRecords", Label: "Household Records", Type: FieldHousehold},
				},
			},
			{
				ID:          3,
				Title:       "Vehicle Information",
				Description: "Tell us about the vehicles on this policy",
				Role:        RoleVehicles,
				Fields: []Field{
					{Name: "vehicles", Label: "Vehicles", Type: FieldVehicles, Required: true},
				},
			},
			{
				ID:          4,
				Title:       "Coverage Selections",
				Description: "Select policy and per-vehicle coverages",
				Role:        RoleCoverage,
				Fields: []Field{
					{Name: "policyStartDate", Label: "Policy Start Date", Type: FieldDate},
					{Name: "coverageSelections", Label: "Coverage Selections", Type: FieldCoverage},
				},
			},
		},
	}
}
