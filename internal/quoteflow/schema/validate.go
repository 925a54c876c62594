package schema

import "fmt"

// Validate checks the structural invariants of a quote type: contiguous
// 1-indexed step ids, field names unique across the whole flow, options on
// closed-choice fields, and percentage-currency base references pointing at
// a field declared earlier (no forward or cyclic dependencies).
func Validate(qt QuoteType) error {
	if qt.ID == "" {
		return fmt.Errorf("quote type missing id")
	}
	if qt.Name == "" {
		return fmt.Errorf("quote type %q missing name", qt.ID)
	}
	if len(qt.Steps) == 0 {
		return fmt.Errorf("quote type %q has no steps", qt.ID)
	}

	seen := map[string]bool{}
	for i, step := range qt.Steps {
		if step.ID != i+1 {
			return fmt.Errorf("quote type %q: step %d has id %d, want %d", qt.ID, i, step.ID, i+1)
		}
		if step.Title == "" {
			return fmt.Errorf("quote type %q: step %d missing title", qt.ID, step.ID)
		}
		for _, f := range step.Fields {
			if err := validateField(qt.ID, step.ID, f, seen); err != nil {
				return err
			}
			seen[f.Name] = true
		}
	}
	return nil
}

func validateField(qtID string, stepID int, f Field, earlier map[string]bool) error {
	if f.Name == "" {
		return fmt.Errorf("quote type %q: step %d has a field without a name", qtID, stepID)
	}
	if earlier[f.Name] {
		return fmt.Errorf("quote type %q: duplicate field name %q", qtID, f.Name)
	}
	if f.Label == "" && f.Type != FieldSection {
		return fmt.Errorf("quote type %q: field %q missing label", qtID, f.Name)
	}
	switch f.Type {
	case FieldText, FieldEmail, FieldPhone, FieldDate, FieldCheckbox, FieldSection,
		FieldClaims, FieldDrivers, FieldVehicles, FieldCoverage, FieldHousehold, FieldCurrency:
	case FieldSelect, FieldRadio:
		if len(f.Options) == 0 {
			return fmt.Errorf("quote type %q: field %q needs options", qtID, f.Name)
		}
	case FieldPctOfBase:
		if len(f.Options) == 0 {
			return fmt.Errorf("quote type %q: field %q needs options", qtID, f.Name)
		}
		if f.BaseField == "" {
			return fmt.Errorf("quote type %q: field %q needs a base field", qtID, f.Name)
		}
		if !earlier[f.BaseField] {
			return fmt.Errorf("quote type %q: field %q references base %q before it is declared", qtID, f.Name, f.BaseField)
		}
	default:
		return fmt.Errorf("quote type %q: field %q has unknown type %q", qtID, f.Name, f.Type)
	}
	return nil
}
