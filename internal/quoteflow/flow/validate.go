package flow

import (
	"fmt"

	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
)

// ValidateStep checks every field on the step against the store, in
// declaration order. An empty result means the step may be left.
func (c *Controller) ValidateStep(step schema.Step) []string {
	var msgs []string
	for _, f := range step.Fields {
		switch f.Type {
		case schema.FieldSection:
			continue
		case schema.FieldVehicles:
			msgs = append(msgs, c.validateVehicles(f)...)
			continue
		case schema.FieldDrivers:
			msgs = append(msgs, c.validateDrivers(f)...)
			continue
		case schema.FieldClaims:
			msgs = append(msgs, c.validateClaims(f)...)
			continue
		}
		if f.Required && !c.st.Truthy(f.Name) {
			msgs = append(msgs, f.Label+" is required")
		}
	}
	return msgs
}

func (c *Controller) validateVehicles(f schema.Field) []string {
	vehicles, err := entities.DecodeVehicles(c.st.Get(f.Name))
	if err != nil {
		return []string{"Vehicle information is invalid"}
	}
	if len(vehicles) == 0 {
		return []string{"At least one vehicle is required"}
	}
	var msgs []string
	for i, v := range vehicles {
		n := i + 1
		if missingChoice(v.ModelYear) {
			msgs = append(msgs, fmt.Sprintf("Vehicle %d: Model Year is required", n))
		}
		if missingChoice(v.Make) {
			msgs = append(msgs, fmt.Sprintf("Vehicle %d: Make is required", n))
		}
		if missingChoice(v.Model) {
			msgs = append(msgs, fmt.Sprintf("Vehicle %d: Model is required", n))
		}
	}
	return msgs
}

func (c *Controller) validateDrivers(f schema.Field) []string {
	drivers, err := entities.DecodeDrivers(c.st.Get(f.Name))
	if err != nil {
		return []string{"Driver information is invalid"}
	}
	if len(drivers) == 0 {
		return []string{"At least one driver is required"}
	}
	var msgs []string
	for i, d := range drivers {
		n := i + 1
		if d.FirstName == "" {
			msgs = append(msgs, fmt.Sprintf("Driver %d: First Name is required", n))
		}
		if d.LastName == "" {
			msgs = append(msgs, fmt.Sprintf("Driver %d: Last Name is required", n))
		}
	}
	return msgs
}

func (c *Controller) validateClaims(f schema.Field) []string {
	if c.st.Get(entities.ClaimsGateField) != entities.ClaimsGateYes {
		return nil
	}
	claims, err := entities.DecodeClaims(c.st.Get(f.Name))
	if err != nil {
		return []string{"Claims information is invalid"}
	}
	var msgs []string
	for i, cl := range claims {
		n := i + 1
		if cl.DateOfLoss == "" {
			msgs = append(msgs, fmt.Sprintf("Claim %d: Date of Loss is required", n))
		}
		if missingChoice(cl.Loss) {
			msgs = append(msgs, fmt.Sprintf("Claim %d: Loss is required", n))
		}
		if cl.Amount == "" {
			msgs = append(msgs, fmt.Sprintf("Claim %d: Amount is required", n))
		}
	}
	return msgs
}

func missingChoice(v string) bool {
	return v == "" || v == schema.PlaceholderOption
}
