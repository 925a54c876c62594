package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
)

// subfield is one editable attribute of an entity row. Options nil means
// free text.
type subfield struct {
	label   string
	options []string
	get     func() string
	set     func(string)
}

// entityEditor drives the dynamic-list fields: claims, drivers, vehicles,
// the coverage matrix, and the household roster. Expansion state is
// model-local and never persisted.
type entityEditor struct {
	field    schema.Field
	st       *store.Store
	keys     KeyMap
	cursor   int
	subIdx   int
	expanded map[int]bool
	editing  bool
	input    textinput.Model
}

func newEntityEditor(f schema.Field, st *store.Store, keys KeyMap) *entityEditor {
	return &entityEditor{field: f, st: st, keys: keys, expanded: map[int]bool{}}
}

func (e *entityEditor) rowCount() int {
	switch e.field.Type {
	case schema.FieldClaims:
		return len(e.claims())
	case schema.FieldDrivers:
		return len(e.drivers())
	case schema.FieldVehicles:
		return len(e.vehicles())
	case schema.FieldCoverage:
		return len(e.coverageCells())
	case schema.FieldHousehold:
		return len(entities.SampleHouseholdMembers) + len(entities.SampleHouseholdVehicles)
	}
	return 0
}

func (e *entityEditor) claims() []entities.Claim {
	claims, err := entities.DecodeClaims(e.st.Get(e.field.Name))
	if err != nil {
		return nil
	}
	return claims
}

func (e *entityEditor) drivers() []entities.Driver {
	drivers, err := entities.DecodeDrivers(e.st.Get(e.field.Name))
	if err != nil {
		return nil
	}
	return drivers
}

func (e *entityEditor) vehicles() []entities.Vehicle {
	vehicles, err := entities.DecodeVehicles(e.st.Get(e.field.Name))
	if err != nil {
		return nil
	}
	return vehicles
}

func (e *entityEditor) saveClaims(claims []entities.Claim) {
	e.st.Update(map[string]any{e.field.Name: entities.EncodeClaims(claims)})
}

func (e *entityEditor) saveDrivers(drivers []entities.Driver) {
	e.st.Update(map[string]any{e.field.Name: entities.EncodeDrivers(drivers)})
}

func (e *entityEditor) saveVehicles(vehicles []entities.Vehicle) {
	e.st.Update(map[string]any{e.field.Name: entities.EncodeVehicles(vehicles)})
}

func claimSubfields(c *entities.Claim, lossTypes []string) []subfield {
	return []subfield{
		{label: "Date of Loss", get: func() string { return c.DateOfLoss }, set: func(v string) { c.DateOfLoss = v }},
		{label: "Loss", options: lossTypes, get: func() string { return c.Loss }, set: func(v string) { c.Loss = v }},
		{label: "Amount", get: func() string { return c.Amount }, set: func(v string) { c.Amount = v }},
		{label: "Description", get: func() string { return c.Description }, set: func(v string) { c.Description = v }},
	}
}

func driverSubfields(d *entities.Driver) []subfield {
	subs := []subfield{
		{label: "First Name", get: func() string { return d.FirstName }, set: func(v string) { d.FirstName = v }},
		{label: "Middle Name", get: func() string { return d.MiddleName }, set: func(v string) { d.MiddleName = v }},
		{label: "Last Name", get: func() string { return d.LastName }, set: func(v string) { d.LastName = v }},
		{label: "Birth Date", get: func() string { return d.BirthDate }, set: func(v string) { d.BirthDate = v }},
	}
	if !d.IsPrimary {
		subs = append(subs,
			subfield{
				label:   "Relationship",
				options: []string{schema.PlaceholderOption, "Spouse", "Child", "Parent", "Other Relative", "Other"},
				get:     func() string { return d.RelationshipToInsured },
				set:     func(v string) { d.RelationshipToInsured = v },
			},
			subfield{
				label:   "Driver Type",
				options: []string{"Rated", "Listed", "Excluded"},
				get:     func() string { return d.DriverType },
				set:     func(v string) { d.DriverType = v },
			},
		)
	}
	subs = append(subs,
		subfield{label: "License State", options: schema.USStates, get: func() string { return d.LicenseState }, set: func(v string) { d.LicenseState = v }},
		subfield{label: "License Number", get: func() string { return d.LicenseNumber }, set: func(v string) { d.LicenseNumber = v }},
		subfield{label: "Age First Licensed", get: func() string { return d.AgeWhenFirstLicensed }, set: func(v string) { d.AgeWhenFirstLicensed = v }},
		subfield{label: "License Suspended", options: []string{"No", "Yes"}, get: func() string { return d.LicenseSuspended }, set: func(v string) { d.LicenseSuspended = v }},
		subfield{label: "SR-22 Filing", options: []string{"No", "Yes"}, get: func() string { return d.SR22Filing }, set: func(v string) { d.SR22Filing = v }},
	)
	return subs
}

func vehicleSubfields(v *entities.Vehicle) []subfield {
	return []subfield{
		{label: "Model Year", options: entities.VehicleYears(time.Now()), get: func() string { return v.ModelYear }, set: func(s string) { v.ModelYear = s }},
		{label: "Make", options: entities.PopularMakes, get: func() string { return v.Make }, set: func(s string) { v.Make = s }},
		{label: "Model", get: func() string { return v.Model }, set: func(s string) { v.Model = s }},
		{label: "VIN", get: func() string { return v.VIN }, set: func(s string) { v.VIN = s }},
		{label: "Purchase Date", get: func() string { return v.PurchaseDate }, set: func(s string) { v.PurchaseDate = s }},
		{label: "Annual Mileage", get: func() string { return v.AnnualMileage }, set: func(s string) { v.AnnualMileage = s }},
		{label: "Mileage Band", options: entities.MileageBands, get: func() string { return v.MileageBand }, set: func(s string) { v.MileageBand = s }},
		{label: "Rented or Leased", options: []string{"No", "Yes"}, get: func() string { return v.IsRentedOrLeased }, set: func(s string) { v.IsRentedOrLeased = s }},
	}
}

// coverageCell is one row of the coverage matrix: a policy-level coverage or
// one vehicle's cell, addressed by its store key.
type coverageCell struct {
	label   string
	key     string
	options []string
}

func (e *entityEditor) coverageCells() []coverageCell {
	var cells []coverageCell
	for _, c := range entities.PolicyCoverages {
		cells = append(cells, coverageCell{label: c.Label, key: c.Name, options: c.Options})
	}
	vehicles, err := entities.DecodeVehicles(e.st.Get("vehicles"))
	if err != nil {
		return cells
	}
	for _, v := range vehicles {
		for _, c := range entities.VehicleCoverages {
			cells = append(cells, coverageCell{
				label:   v.Label() + ": " + c.Label,
				key:     entities.ComposeKey(c.Name, v.ID),
				options: c.Options,
			})
		}
	}
	return cells
}

// handleKey processes a key while the editor's field has focus. It reports
// whether the key was consumed; unconsumed navigation falls through to the
// step screen.
func (e *entityEditor) handleKey(msg tea.KeyMsg) bool {
	if e.editing {
		switch msg.String() {
		case "enter":
			e.commitText(e.input.Value())
			e.editing = false
		case "esc":
			e.editing = false
		default:
			e.input, _ = e.input.Update(msg)
		}
		return true
	}

	switch {
	case keyIs(msg, e.keys.NavUp):
		if e.cursorUp() {
			return true
		}
	case keyIs(msg, e.keys.NavDown):
		if e.cursorDown() {
			return true
		}
	case keyIs(msg, e.keys.Add):
		e.addEntity()
		return true
	case keyIs(msg, e.keys.Remove):
		e.removeEntity()
		return true
	case keyIs(msg, e.keys.Select):
		e.enter()
		return true
	case keyIs(msg, e.keys.Toggle):
		e.toggle()
		return true
	case keyIs(msg, e.keys.Left):
		e.cycle(-1)
		return true
	case keyIs(msg, e.keys.Right):
		e.cycle(1)
		return true
	}
	return false
}

// cursorDown walks subfields of an expanded row before moving to the next
// row. Returns false past the last row so focus can leave the editor.
func (e *entityEditor) cursorDown() bool {
	if e.expanded[e.cursor] {
		if e.subIdx < len(e.currentSubfields())-1 {
			e.subIdx++
			return true
		}
	}
	if e.cursor < e.rowCount()-1 {
		e.cursor++
		e.subIdx = 0
		return true
	}
	return false
}

func (e *entityEditor) cursorUp() bool {
	if e.expanded[e.cursor] && e.subIdx > 0 {
		e.subIdx--
		return true
	}
	if e.cursor > 0 {
		e.cursor--
		e.subIdx = 0
		if e.expanded[e.cursor] {
			e.subIdx = len(e.currentSubfields()) - 1
		}
		return true
	}
	return false
}

func (e *entityEditor) currentSubfields() []subfield {
	switch e.field.Type {
	case schema.FieldClaims:
		claims := e.claims()
		if e.cursor >= len(claims) {
			return nil
		}
		c := claims[e.cursor]
		subs := claimSubfields(&c, e.field.Options)
		for i := range subs {
			set := subs[i].set
			subs[i].set = func(v string) {
				set(v)
				claims[e.cursor] = c
				e.saveClaims(claims)
			}
		}
		return subs
	case schema.FieldDrivers:
		drivers := e.drivers()
		if e.cursor >= len(drivers) {
			return nil
		}
		d := drivers[e.cursor]
		subs := driverSubfields(&d)
		for i := range subs {
			set := subs[i].set
			subs[i].set = func(v string) {
				set(v)
				drivers[e.cursor] = d
				e.saveDrivers(drivers)
			}
		}
		return subs
	case schema.FieldVehicles:
		vehicles := e.vehicles()
		if e.cursor >= len(vehicles) {
			return nil
		}
		v := vehicles[e.cursor]
		subs := vehicleSubfields(&v)
		for i := range subs {
			set := subs[i].set
			subs[i].set = func(s string) {
				set(s)
				vehicles[e.cursor] = v
				e.saveVehicles(vehicles)
			}
		}
		return subs
	}
	return nil
}

func (e *entityEditor) addEntity() {
	switch e.field.Type {
	case schema.FieldClaims:
		e.saveClaims(append(e.claims(), entities.NewClaim()))
	case schema.FieldDrivers:
		e.saveDrivers(append(e.drivers(), entities.NewDriver()))
	case schema.FieldVehicles:
		e.saveVehicles(append(e.vehicles(), entities.NewVehicle()))
	default:
		return
	}
	e.cursor = e.rowCount() - 1
	e.expanded[e.cursor] = true
	e.subIdx = 0
}

func (e *entityEditor) removeEntity() {
	switch e.field.Type {
	case schema.FieldClaims:
		claims := e.claims()
		if e.cursor < len(claims) {
			e.saveClaims(append(claims[:e.cursor], claims[e.cursor+1:]...))
		}
	case schema.FieldDrivers:
		drivers := e.drivers()
		if e.cursor < len(drivers) {
			e.saveDrivers(entities.RemoveDriver(drivers, drivers[e.cursor].ID))
		}
	case schema.FieldVehicles:
		vehicles := e.vehicles()
		if e.cursor < len(vehicles) {
			id := vehicles[e.cursor].ID
			next := entities.RemoveVehicle(vehicles, id)
			e.saveVehicles(next)
			if len(next) < len(vehicles) {
				e.clearEntityKeys(id)
			}
		}
	default:
		return
	}
	if n := e.rowCount(); e.cursor >= n && n > 0 {
		e.cursor = n - 1
	}
	e.subIdx = 0
}

// clearEntityKeys blanks every stored value composed with the removed
// entity's id, so a dropped vehicle's coverage selections do not linger.
func (e *entityEditor) clearEntityKeys(entityID string) {
	update := map[string]any{}
	for key := range e.st.Snapshot() {
		if _, id, ok := entities.ParseKey(key); ok && id == entityID {
			update[key] = ""
		}
	}
	if len(update) > 0 {
		e.st.Update(update)
	}
}

// enter expands or collapses the entity row, or starts text editing when a
// free-text subfield is selected inside an expanded row.
func (e *entityEditor) enter() {
	switch e.field.Type {
	case schema.FieldCoverage, schema.FieldHousehold:
		return
	}
	if !e.expanded[e.cursor] {
		e.expanded[e.cursor] = true
		e.subIdx = 0
		return
	}
	subs := e.currentSubfields()
	if e.subIdx < len(subs) && subs[e.subIdx].options == nil {
		ti := textinput.New()
		ti.SetValue(subs[e.subIdx].get())
		ti.CharLimit = 64
		ti.Focus()
		e.input = ti
		e.editing = true
		return
	}
	e.expanded[e.cursor] = false
	e.subIdx = 0
}

func (e *entityEditor) commitText(v string) {
	subs := e.currentSubfields()
	if e.subIdx < len(subs) {
		subs[e.subIdx].set(v)
	}
}

// toggle flips household checkmarks; on other kinds it collapses the row.
func (e *entityEditor) toggle() {
	if e.field.Type != schema.FieldHousehold {
		if e.expanded[e.cursor] {
			delete(e.expanded, e.cursor)
			e.subIdx = 0
		}
		return
	}
	members := entities.SampleHouseholdMembers
	if e.cursor < len(members) {
		key := entities.ComposeKey(entities.HouseholdDriverKey, members[e.cursor].ID)
		e.st.Update(map[string]any{key: !e.st.Truthy(key)})
		return
	}
	idx := e.cursor - len(members)
	if idx < len(entities.SampleHouseholdVehicles) {
		key := entities.ComposeKey(entities.HouseholdVehicleKey, entities.SampleHouseholdVehicles[idx].ID)
		e.st.Update(map[string]any{key: !e.st.Truthy(key)})
	}
}

// cycle steps the selected option subfield or coverage cell.
func (e *entityEditor) cycle(delta int) {
	switch e.field.Type {
	case schema.FieldCoverage:
		cells := e.coverageCells()
		if e.cursor < len(cells) {
			cell := cells[e.cursor]
			next := cycleOption(cell.options, e.st.Get(cell.key), delta)
			e.st.Update(map[string]any{cell.key: next})
		}
	case schema.FieldHousehold:
		members := entities.SampleHouseholdMembers
		if e.cursor < len(members) {
			key := entities.ComposeKey(entities.HouseholdRelationshipKey, members[e.cursor].ID)
			next := cycleOption(entities.RelationshipOptions, e.st.Get(key), delta)
			e.st.Update(map[string]any{key: next})
		}
	default:
		if !e.expanded[e.cursor] {
			return
		}
		subs := e.currentSubfields()
		if e.subIdx < len(subs) && subs[e.subIdx].options != nil {
			sub := subs[e.subIdx]
			sub.set(cycleOption(sub.options, sub.get(), delta))
		}
	}
}

// cycleOption steps through options, clamping at both ends. An unknown or
// empty current value lands on the first option.
func cycleOption(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(options) {
		idx = len(options) - 1
	}
	return options[idx]
}
