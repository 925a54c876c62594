package flow

import (
	"fmt"

	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/money"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
)

// Pre-selected values injected the first time their step becomes active.
// Injection is keyed on the field appearing in the step, so the same name
// on another quote type is untouched.
var stepFieldDefaults = map[string]string{
	"personalLiability":        "$300,000",
	"allOtherPerilsDeductible": "$1,000",
	"medicalPayments":          "5%",
}

// ApplyStepDefaults injects a step's pre-selected values into the store.
// Values the applicant has already set are never overwritten, so calling it
// on every re-entry is safe.
func (c *Controller) ApplyStepDefaults(step schema.Step) {
	for _, f := range step.Fields {
		if def, ok := stepFieldDefaults[f.Name]; ok && c.st.Get(f.Name) == "" {
			c.st.Set(f.Name, def)
		}
	}
	for _, f := range step.Fields {
		if f.Type != schema.FieldCoverage {
			continue
		}
		vehicles, err := entities.DecodeVehicles(c.st.Get("vehicles"))
		if err != nil {
			vehicles = nil
		}
		entities.ApplyCoverageDefaults(c.st, vehicles)
		break
	}
}

// Bounds for the dwelling-limit estimate, whole dollars inclusive.
const (
	estimateMin = 150_000
	estimateMax = 450_000
)

// EstimateBaseValue assigns a bounded random dwelling limit and backfills
// each dependent percentage field with its default option, then returns the
// formatted limit. Percentages the applicant already chose are kept.
func (c *Controller) EstimateBaseValue() string {
	limit := estimateMin + c.rng.Intn(estimateMax-estimateMin+1)
	formatted := money.FormatWhole(float64(limit))
	c.st.Set("dwellingLimit", formatted)

	for _, step := range c.qt.Steps {
		for _, f := range step.Fields {
			if f.Type != schema.FieldPctOfBase || f.BaseField != "dwellingLimit" {
				continue
			}
			if c.st.Get(f.Name) == "" {
				c.st.Set(f.Name, fmt.Sprintf("%g%%", f.Percentage))
			}
		}
	}
	return formatted
}
