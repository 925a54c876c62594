package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/money"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
)

// Item is one rendered label/value pair.
type Item struct {
	Label string
	Value string
}

// Block is one titled group of recap output. Entity-list fields contribute
// nested blocks, one per entity.
type Block struct {
	Title  string
	Items  []Item
	Blocks []Block
}

// Recap replays the schema over the store. Steps render in order; fields
// render in declaration order; empty values and section headers are
// skipped.
func Recap(qt schema.QuoteType, st *store.Store) []Block {
	var blocks []Block
	for _, step := range qt.Steps {
		b := Block{Title: step.Title}
		for _, f := range step.Fields {
			switch f.Type {
			case schema.FieldSection:
				continue
			case schema.FieldClaims:
				b.Blocks = append(b.Blocks, claimBlocks(st, f)...)
			case schema.FieldDrivers:
				b.Blocks = append(b.Blocks, driverBlocks(st, f)...)
			case schema.FieldVehicles:
				b.Blocks = append(b.Blocks, vehicleBlocks(st, f)...)
			case schema.FieldCoverage:
				b.Items = append(b.Items, policyCoverageItems(st)...)
			default:
				if item, ok := renderField(st, f); ok {
					b.Items = append(b.Items, item)
				}
			}
		}
		if len(b.Items) > 0 || len(b.Blocks) > 0 {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func renderField(st *store.Store, f schema.Field) (Item, bool) {
	switch f.Type {
	case schema.FieldCheckbox:
		if !st.Has(f.Name) {
			return Item{}, false
		}
		v := "No"
		if st.GetBool(f.Name) {
			v = "Yes"
		}
		return Item{Label: f.Label, Value: v}, true
	case schema.FieldPctOfBase:
		raw := st.Get(f.Name)
		if raw == "" {
			return Item{}, false
		}
		pct := money.ParseNumeric(raw)
		amount := ComputedAmount(st.Get(f.BaseField), raw)
		value := strconv.FormatFloat(pct, 'f', -1, 64) + "% (" + amount + ")"
		return Item{Label: f.Label, Value: value}, true
	default:
		v := st.Get(f.Name)
		if v == "" {
			return Item{}, false
		}
		return Item{Label: f.Label, Value: v}, true
	}
}

func claimBlocks(st *store.Store, f schema.Field) []Block {
	if st.Get(entities.ClaimsGateField) != entities.ClaimsGateYes {
		return nil
	}
	claims, err := entities.DecodeClaims(st.Get(f.Name))
	if err != nil {
		return nil
	}
	var blocks []Block
	for i, c := range claims {
		b := Block{Title: fmt.Sprintf("Claim %d", i+1)}
		b.Items = appendItem(b.Items, "Date of Loss", c.DateOfLoss)
		b.Items = appendItem(b.Items, "Loss", c.Loss)
		b.Items = appendItem(b.Items, "Amount", c.Amount)
		b.Items = appendItem(b.Items, "Description", c.Description)
		blocks = append(blocks, b)
	}
	return blocks
}

func driverBlocks(st *store.Store, f schema.Field) []Block {
	drivers, err := entities.DecodeDrivers(st.Get(f.Name))
	if err != nil {
		return nil
	}
	var blocks []Block
	for i, d := range drivers {
		title := fmt.Sprintf("Driver %d", i+1)
		if d.IsPrimary {
			title += " (Primary)"
		}
		b := Block{Title: title}
		name := strings.TrimSpace(strings.Join([]string{d.FirstName, d.MiddleName, d.LastName}, " "))
		b.Items = appendItem(b.Items, "Name", strings.Join(strings.Fields(name), " "))
		b.Items = appendItem(b.Items, "Birth Date", d.BirthDate)
		b.Items = appendItem(b.Items, "Relationship", d.RelationshipToInsured)
		b.Items = appendItem(b.Items, "Driver Type", d.DriverType)
		b.Items = appendItem(b.Items, "License", strings.TrimSpace(d.LicenseState+" "+d.LicenseNumber))
		b.Items = appendItem(b.Items, "SR-22 Filing", d.SR22Filing)
		blocks = append(blocks, b)
	}
	return blocks
}

func vehicleBlocks(st *store.Store, f schema.Field) []Block {
	vehicles, err := entities.DecodeVehicles(st.Get(f.Name))
	if err != nil {
		return nil
	}
	var blocks []Block
	for i, v := range vehicles {
		b := Block{Title: fmt.Sprintf("Vehicle %d: %s", i+1, v.Label())}
		b.Items = appendItem(b.Items, "VIN", v.VIN)
		b.Items = appendItem(b.Items, "Purchase Date", v.PurchaseDate)
		b.Items = appendItem(b.Items, "Annual Mileage", v.AnnualMileage)
		b.Items = appendItem(b.Items, "Mileage Band", v.MileageBand)
		b.Items = appendItem(b.Items, "Rented or Leased", v.IsRentedOrLeased)
		for _, c := range entities.VehicleCoverages {
			sel := st.Get(entities.ComposeKey(c.Name, v.ID))
			if sel == "" || sel == "No Coverage" {
				continue
			}
			b.Items = append(b.Items, Item{Label: c.Label, Value: sel})
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func policyCoverageItems(st *store.Store) []Item {
	var items []Item
	for _, c := range entities.PolicyCoverages {
		if v := st.Get(c.Name); v != "" {
			items = append(items, Item{Label: c.Label, Value: v})
		}
	}
	return items
}

func appendItem(items []Item, label, value string) []Item {
	if value == "" {
		return items
	}
	return append(items, Item{Label: label, Value: value})
}

// policyHolderFields is the fixed identity projection for the policy-holder
// block, independent of which step collected each field.
var policyHolderFields = []struct {
	name  string
	label string
}{
	{"firstName", "First Name"},
	{"middleInitial", "Middle Initial"},
	{"middleName", "Middle Name"},
	{"lastName", "Last Name"},
	{"suffix", "Suffix"},
	{"dateOfBirth", "Date of Birth"},
	{"phoneNumber", "Phone Number"},
	{"emailAddress", "Email Address"},
	{"streetAddress", "Street Address"},
	{"addressLine2", "Address Line 2"},
	{"city", "City"},
	{"state", "State"},
	{"zipCode", "Zip Code"},
}

// PolicyHolder projects the applicant's identity fields into one block.
func PolicyHolder(st *store.Store) Block {
	b := Block{Title: "Policy Holder"}
	for _, f := range policyHolderFields {
		if v := st.Get(f.name); v != "" {
			b.Items = append(b.Items, Item{Label: f.label, Value: v})
		}
	}
	return b
}
