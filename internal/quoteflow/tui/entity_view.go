package tui

import (
	"fmt"
	"strings"

	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
)

// view renders the claims/drivers/vehicles lists: one header line per
// entity, subfields underneath when expanded.
func (e *entityEditor) view(focused bool) string {
	var b strings.Builder
	b.WriteString(e.header(focused))

	n := e.rowCount()
	if n == 0 {
		b.WriteString(SubtitleStyle.Render("  (none)") + "\n")
		return b.String()
	}
	for row := 0; row < n; row++ {
		b.WriteString(e.rowView(row, focused))
	}
	return b.String()
}

func (e *entityEditor) header(focused bool) string {
	style := LabelStyle
	if focused {
		style = FocusedStyle
	}
	return style.Render(e.field.Label) + "\n"
}

func (e *entityEditor) rowView(row int, focused bool) string {
	marker := "  "
	if focused && row == e.cursor {
		marker = "> "
	}
	title := e.rowTitle(row)
	var b strings.Builder
	if focused && row == e.cursor {
		b.WriteString(SelectedStyle.Render(marker+title) + "\n")
	} else {
		b.WriteString(ValueStyle.Render(marker+title) + "\n")
	}
	if !e.expanded[row] {
		return b.String()
	}

	saved := e.cursor
	e.cursor = row
	subs := e.currentSubfields()
	e.cursor = saved
	for i, sub := range subs {
		b.WriteString(e.subfieldView(row, i, sub, focused))
	}
	return b.String()
}

func (e *entityEditor) subfieldView(row, idx int, sub subfield, focused bool) string {
	active := focused && row == e.cursor && idx == e.subIdx
	style := LabelStyle
	if active {
		style = FocusedStyle
	}
	if active && e.editing {
		return "    " + style.Render(sub.label+":") + " " + e.input.View() + "\n"
	}
	v := sub.get()
	if v == "" {
		v = "—"
	}
	if sub.options != nil {
		return "    " + style.Render(sub.label+":") + " " + optionView(v, active) + "\n"
	}
	return "    " + style.Render(sub.label+":") + " " + ValueStyle.Render(v) + "\n"
}

func (e *entityEditor) rowTitle(row int) string {
	switch e.field.Type {
	case schema.FieldClaims:
		claims := e.claims()
		if row >= len(claims) {
			return ""
		}
		c := claims[row]
		title := fmt.Sprintf("Claim %d", row+1)
		if c.Loss != "" {
			title += ": " + c.Loss
		}
		return title
	case schema.FieldDrivers:
		drivers := e.drivers()
		if row >= len(drivers) {
			return ""
		}
		d := drivers[row]
		name := strings.TrimSpace(d.FirstName + " " + d.LastName)
		if name == "" {
			name = "New Driver"
		}
		if d.IsPrimary {
			name += " (Primary)"
		}
		return fmt.Sprintf("Driver %d: %s", row+1, name)
	case schema.FieldVehicles:
		vehicles := e.vehicles()
		if row >= len(vehicles) {
			return ""
		}
		return fmt.Sprintf("Vehicle %d: %s", row+1, vehicles[row].Label())
	}
	return ""
}

// viewCoverage renders the flat coverage matrix, policy rows first, then
// one row per vehicle cell.
func (e *entityEditor) viewCoverage(focused bool) string {
	var b strings.Builder
	b.WriteString(e.header(focused))
	for i, cell := range e.coverageCells() {
		v := e.st.Get(cell.key)
		if v == "" {
			v = "No Coverage"
		}
		active := focused && i == e.cursor
		style := LabelStyle
		if active {
			style = FocusedStyle
		}
		b.WriteString("  " + style.Render(cell.label+":") + " " + optionView(v, active) + "\n")
	}
	return b.String()
}

// viewHousehold renders the carrier-records roster with selection marks.
func (e *entityEditor) viewHousehold(focused bool) string {
	var b strings.Builder
	b.WriteString(e.header(focused))
	b.WriteString(SubtitleStyle.Render("  People found at this address") + "\n")
	for i, member := range entities.SampleHouseholdMembers {
		active := focused && i == e.cursor
		mark := "[ ]"
		if e.st.Truthy(entities.ComposeKey(entities.HouseholdDriverKey, member.ID)) {
			mark = "[x]"
		}
		rel := e.st.Get(entities.ComposeKey(entities.HouseholdRelationshipKey, member.ID))
		if rel == "" {
			rel = member.Relationship
		}
		style := ValueStyle
		if active {
			style = FocusedStyle
		}
		line := fmt.Sprintf("  %s %s  %s, born %s  ", mark, member.Name, member.Gender, member.Birthdate)
		b.WriteString(style.Render(line) + optionView(rel, active) + "\n")
	}
	b.WriteString(SubtitleStyle.Render("  Vehicles found at this address") + "\n")
	base := len(entities.SampleHouseholdMembers)
	for i, v := range entities.SampleHouseholdVehicles {
		active := focused && base+i == e.cursor
		mark := "[ ]"
		if e.st.Truthy(entities.ComposeKey(entities.HouseholdVehicleKey, v.ID)) {
			mark = "[x]"
		}
		style := ValueStyle
		if active {
			style = FocusedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %d %s %s  VIN %s", mark, v.Year, v.Make, v.Model, v.VIN)) + "\n")
	}
	return b.String()
}
