package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pnanji/quoteflow/internal/quoteflow/config"
	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/flow"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
)

func TestCycleOptionClampsAtEnds(t *testing.T) {
	options := []string{"a", "b", "c"}
	if got := cycleOption(options, "a", -1); got != "a" {
		t.Fatalf("left clamp = %q", got)
	}
	if got := cycleOption(options, "c", 1); got != "c" {
		t.Fatalf("right clamp = %q", got)
	}
	if got := cycleOption(options, "a", 1); got != "b" {
		t.Fatalf("step = %q", got)
	}
	if got := cycleOption(options, "", 1); got != "b" {
		t.Fatalf("empty current = %q", got)
	}
	if got := cycleOption(nil, "x", 1); got != "x" {
		t.Fatalf("no options = %q", got)
	}
}

func testModel(t *testing.T, quoteTypeID string) *Model {
	t.Helper()
	m := New(t.TempDir(), config.Default(), schema.Builtin())
	qt, ok := m.catalog.Get(quoteTypeID)
	if !ok {
		t.Fatalf("quote type %q missing", quoteTypeID)
	}
	m.openWizard(qt)
	m.ctrl.Seed(7)
	return &m
}

func TestOpenWizardLandsOnStepOne(t *testing.T) {
	m := testModel(t, "home-quote")
	if m.screen != ScreenStep || m.pos != 1 {
		t.Fatalf("screen=%d pos=%d", m.screen, m.pos)
	}
	if m.step.Title != "About You & Property Information" {
		t.Fatalf("step title = %q", m.step.Title)
	}
	if m.editors[m.focus].field.Name != "firstName" {
		t.Fatalf("initial focus = %q", m.editors[m.focus].field.Name)
	}
}

func TestAdvanceBlockedShowsErrors(t *testing.T) {
	m := testModel(t, "home-quote")
	m.advance()
	if m.pos != 1 || len(m.errs) == 0 {
		t.Fatalf("pos=%d errs=%v", m.pos, m.errs)
	}
	view := m.viewStep()
	if !strings.Contains(view, "First Name is required") {
		t.Fatalf("error list missing from view:\n%s", view)
	}
}

func TestStepViewShowsPosition(t *testing.T) {
	m := testModel(t, "home-quote")
	if view := m.viewStep(); !strings.Contains(view, "Step 1 of 4: About You & Property Information") {
		t.Fatalf("header missing:\n%s", view)
	}
}

func TestClaimsGateFlipClearsList(t *testing.T) {
	m := testModel(t, "home-quote")
	st := m.ctrl.Store()
	st.Set(entities.ClaimsGateField, entities.ClaimsGateYes)
	st.Set("claims", entities.EncodeClaims([]entities.Claim{
		{ID: "c1", Loss: "Hail"}, {ID: "c2", Loss: "Fire"},
	}))

	fe := &fieldEditor{field: schema.Field{
		Name:    entities.ClaimsGateField,
		Type:    schema.FieldRadio,
		Options: []string{"Yes", "No"},
	}}
	m.commitOption(fe, 1)

	if got := st.Get(entities.ClaimsGateField); got != "No" {
		t.Fatalf("gate = %q", got)
	}
	if got := st.Get("claims"); got != "[]" {
		t.Fatalf("claims = %q", got)
	}

	reopened := store.Open(m.persister(), m.ctrl.QuoteType().SessionKey())
	if got := reopened.Get("claims"); got != "[]" {
		t.Fatalf("persisted claims = %q", got)
	}
}

func TestClaimsEditorHiddenWhileGateClosed(t *testing.T) {
	m := testModel(t, "home-quote")
	m.pos = 3
	m.loadStep()
	view := m.viewStep()
	if strings.Contains(view, "Claim Details") {
		t.Fatalf("claims editor rendered with gate closed:\n%s", view)
	}

	m.ctrl.Store().Set(entities.ClaimsGateField, entities.ClaimsGateYes)
	if view := m.viewStep(); !strings.Contains(view, "Claim Details") {
		t.Fatalf("claims editor missing with gate open:\n%s", view)
	}
}

func TestClaimsEditorUnreachableWhileGateClosed(t *testing.T) {
	m := testModel(t, "home-quote")
	m.pos = 3
	m.loadStep()

	for i := 0; i < 2*len(m.editors); i++ {
		if m.editors[m.focus].field.Type == schema.FieldClaims {
			t.Fatal("focus landed on claims editor with gate closed")
		}
		m.moveFocus(1)
	}

	for i, fe := range m.editors {
		if fe.field.Type == schema.FieldClaims {
			m.focus = i
		}
	}
	m.updateStep(tea.KeyMsg{Type: tea.KeyCtrlA})
	if got := m.ctrl.Store().Get("claims"); got != "" {
		t.Fatalf("claim added with gate closed: %q", got)
	}

	m.ctrl.Store().Set(entities.ClaimsGateField, entities.ClaimsGateYes)
	m.updateStep(tea.KeyMsg{Type: tea.KeyCtrlA})
	claims, err := entities.DecodeClaims(m.ctrl.Store().Get("claims"))
	if err != nil || len(claims) != 1 {
		t.Fatalf("claims with gate open = %v, %v", claims, err)
	}
}

func TestRemovingVehicleClearsItsCoverageCells(t *testing.T) {
	m := testModel(t, "auto-quote")
	st := m.ctrl.Store()
	st.Set("vehicles", entities.EncodeVehicles([]entities.Vehicle{{ID: "v1"}, {ID: "v2"}}))
	st.Set(entities.ComposeKey("collision", "v1"), "$500 Deductible")
	st.Set(entities.ComposeKey("collision", "v2"), "$250 Deductible")

	e := newEntityEditor(schema.Field{Name: "vehicles", Label: "Vehicles", Type: schema.FieldVehicles}, st, m.keys)
	e.removeEntity()

	if got := st.Get(entities.ComposeKey("collision", "v1")); got != "" {
		t.Fatalf("removed vehicle keeps cell %q", got)
	}
	if got := st.Get(entities.ComposeKey("collision", "v2")); got != "$250 Deductible" {
		t.Fatalf("surviving vehicle cell = %q", got)
	}
}

func TestDriversStepSeedsPrimary(t *testing.T) {
	m := testModel(t, "auto-quote")
	st := m.ctrl.Store()
	st.Set("firstName", "Jane")
	st.Set("lastName", "Doe")

	m.pos = 2
	m.loadStep()

	drivers, err := entities.DecodeDrivers(st.Get("drivers"))
	if err != nil || len(drivers) != 1 {
		t.Fatalf("drivers = %v, %v", drivers, err)
	}
	d := drivers[0]
	if d.FirstName != "Jane" || !d.IsPrimary || d.RelationshipToInsured != "Insured" {
		t.Fatalf("primary = %+v", d)
	}
}

func TestCheckedHouseholdVehiclesCarryIntoVehicleStep(t *testing.T) {
	m := testModel(t, "auto-quote")
	st := m.ctrl.Store()
	hv := entities.SampleHouseholdVehicles[0]
	st.Set(entities.ComposeKey(entities.HouseholdVehicleKey, hv.ID), true)

	m.pos = 3
	m.loadStep()

	vehicles, err := entities.DecodeVehicles(st.Get("vehicles"))
	if err != nil || len(vehicles) != 1 {
		t.Fatalf("vehicles = %v, %v", vehicles, err)
	}
	if vehicles[0].VIN != hv.VIN || vehicles[0].Make != hv.Make {
		t.Fatalf("seeded vehicle = %+v", vehicles[0])
	}

	m.loadStep()
	vehicles, _ = entities.DecodeVehicles(st.Get("vehicles"))
	if len(vehicles) != 1 {
		t.Fatalf("re-entry duplicated roster vehicle: %+v", vehicles)
	}
}

func TestVehicleEditorFloor(t *testing.T) {
	m := testModel(t, "auto-quote")
	st := m.ctrl.Store()
	st.Set("vehicles", entities.EncodeVehicles([]entities.Vehicle{{ID: "v1", Make: "Toyota"}}))

	e := newEntityEditor(schema.Field{Name: "vehicles", Label: "Vehicles", Type: schema.FieldVehicles}, st, m.keys)
	e.removeEntity()
	if n := e.rowCount(); n != 1 {
		t.Fatalf("last vehicle removed, count = %d", n)
	}

	e.addEntity()
	if n := e.rowCount(); n != 2 {
		t.Fatalf("count after add = %d", n)
	}
	e.cursor = 0
	e.removeEntity()
	if n := e.rowCount(); n != 1 {
		t.Fatalf("count after remove = %d", n)
	}
}

func TestCoverageCellsCycleWritesComposedKey(t *testing.T) {
	m := testModel(t, "auto-quote")
	st := m.ctrl.Store()
	st.Set("vehicles", entities.EncodeVehicles([]entities.Vehicle{
		{ID: "v1", ModelYear: "2021", Make: "Toyota", Model: "Camry"},
	}))

	e := newEntityEditor(schema.Field{Name: "coverageSelections", Label: "Coverage Selections", Type: schema.FieldCoverage}, st, m.keys)
	cells := e.coverageCells()
	want := len(entities.PolicyCoverages) + len(entities.VehicleCoverages)
	if len(cells) != want {
		t.Fatalf("got %d cells, want %d", len(cells), want)
	}

	e.cursor = len(entities.PolicyCoverages) + 1 // first vehicle's collision row
	e.cycle(1)
	if got := st.Get("collision_v1"); got == "" {
		t.Fatal("composed key not written")
	}
}

func TestEstimateUpdatesDwellingInput(t *testing.T) {
	m := testModel(t, "home-quote")
	m.pos = 4
	m.loadStep()

	estimate := m.ctrl.EstimateBaseValue()
	m.reloadInputs()
	for _, fe := range m.editors {
		if fe.field.Name == "dwellingLimit" {
			if got := fe.input.Value(); got != estimate {
				t.Fatalf("input = %q, estimate = %q", got, estimate)
			}
			return
		}
	}
	t.Fatal("dwellingLimit editor not found")
}

func TestSummaryScreenAfterLastStep(t *testing.T) {
	m := testModel(t, "home-quote")
	for _, step := range m.ctrl.QuoteType().Steps {
		fillSchemaStep(m, step)
	}
	m.pos = flow.Position(m.ctrl.QuoteType().StepCount())
	m.loadStep()
	m.advance()
	if m.screen != ScreenSummary {
		t.Fatalf("screen = %d, errs = %v", m.screen, m.errs)
	}
	view := m.viewSummary()
	for _, want := range []string{"Quote Summary", "Annual Premium", "Monthly Premium", "Edit Quote", "Finish"} {
		if !strings.Contains(view, want) {
			t.Fatalf("summary view missing %q:\n%s", want, view)
		}
	}
}

func fillSchemaStep(m *Model, step schema.Step) {
	st := m.ctrl.Store()
	for _, f := range step.Fields {
		if !f.Required || f.Type == schema.FieldSection {
			continue
		}
		switch f.Type {
		case schema.FieldCheckbox:
			st.Set(f.Name, true)
		case schema.FieldSelect, schema.FieldRadio:
			st.Set(f.Name, f.Options[len(f.Options)-1])
		default:
			st.Set(f.Name, "x")
		}
	}
}
