// Package summary composes the terminal quote view: the placeholder premium,
// the policy term, the policy-holder block, and a recap of everything the
// applicant entered, replayed from the schema in declaration order.
package summary

import (
	"time"

	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/money"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
)

// Pricing is the quoted premium. The number is a placeholder derived from
// the session's shape, not an underwriting result.
type Pricing struct {
	Annual  float64
	Monthly float64
}

func (p Pricing) AnnualDisplay() string  { return money.FormatWhole(p.Annual) }
func (p Pricing) MonthlyDisplay() string { return money.FormatCents(p.Monthly) }

// Structural surcharge amounts, documented placeholders.
const (
	extraVehicleSurcharge  = 180
	collisionSurcharge     = 60
	comprehensiveSurcharge = 45
	highLiabilitySurcharge = 90
	homeLiabilitySurcharge = 75
	hurricaneMinSurcharge  = 50
)

// Premium prices the session: the quote type's base, structural surcharges
// read off the entered data, and a variation term derived from the
// serialized session length.
func Premium(qt schema.QuoteType, st *store.Store) Pricing {
	annual := float64(qt.BasePremium) + surcharges(qt, st)
	annual += float64(st.SerializedLen()*qt.VariationMultiplier % qt.VariationModulus)
	return Pricing{Annual: annual, Monthly: annual / 12}
}

func surcharges(qt schema.QuoteType, st *store.Store) float64 {
	var total float64
	switch qt.ID {
	case "auto-quote":
		vehicles, err := entities.DecodeVehicles(st.Get("vehicles"))
		if err == nil {
			if len(vehicles) > 1 {
				total += float64(extraVehicleSurcharge * (len(vehicles) - 1))
			}
			for _, v := range vehicles {
				if carries(st.Get(entities.ComposeKey("collision", v.ID))) {
					total += collisionSurcharge
				}
				if carries(st.Get(entities.ComposeKey("comprehensive", v.ID))) {
					total += comprehensiveSurcharge
				}
			}
		}
		switch st.Get("bodilyInjury") {
		case "250/500", "500/1000":
			total += highLiabilitySurcharge
		}
	case "home-quote":
		if money.ParseNumeric(st.Get("personalLiability")) >= 300_000 {
			total += homeLiabilitySurcharge
		}
		if pct := money.ParseNumeric(st.Get("hurricaneDeductible")); pct > 0 && pct <= 2 {
			total += hurricaneMinSurcharge
		}
	}
	return total
}

func carries(selection string) bool {
	return selection != "" && selection != "No Coverage"
}

// Term derives the policy period: the quote type's start-date field parsed
// leniently, falling back to now, plus the term length.
func Term(qt schema.QuoteType, st *store.Store, now time.Time) (start, end time.Time) {
	start = now
	if raw := st.Get(qt.StartDateField); raw != "" {
		for _, layout := range []string{"2006-01-02", "01/02/2006"} {
			if t, err := time.Parse(layout, raw); err == nil {
				start = t
				break
			}
		}
	}
	return start, start.AddDate(0, qt.TermMonths, 0)
}

// ComputedAmount resolves a percentage-of-base selection to dollars:
// ComputedAmount("$200,000", "10") is "$20,000".
func ComputedAmount(base, pct string) string {
	return money.FormatWhole(money.ParseNumeric(base) * money.ParseNumeric(pct) / 100)
}
