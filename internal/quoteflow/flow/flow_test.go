package flow

import (
	"strings"
	"testing"

	"github.com/pnanji/quoteflow/internal/quoteflow/entities"
	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
)

func newController(t *testing.T, quoteTypeID string) *Controller {
	t.Helper()
	catalog := schema.Builtin()
	qt, ok := catalog.Get(quoteTypeID)
	if !ok {
		t.Fatalf("quote type %q not in catalog", quoteTypeID)
	}
	st := store.Open(store.NewMemPersister(), qt.SessionKey())
	return New(qt, st)
}

func TestStartIsStepOne(t *testing.T) {
	c := newController(t, "home-quote")
	if got := c.Start(); got != 1 {
		t.Fatalf("Start = %d", got)
	}
}

func TestNextBlockedByRequiredFields(t *testing.T) {
	c := newController(t, "home-quote")
	pos, msgs := c.Next(1)
	if pos != 1 {
		t.Fatalf("advanced to %d with empty store", pos)
	}
	if len(msgs) == 0 {
		t.Fatal("expected validation messages")
	}
	if msgs[0] != "First Name is required" {
		t.Fatalf("msgs[0] = %q", msgs[0])
	}
	for _, m := range msgs {
		if !strings.HasSuffix(m, "is required") {
			t.Fatalf("unexpected message %q", m)
		}
	}
}

func TestMessagesFollowDeclarationOrder(t *testing.T) {
	c := newController(t, "home-quote")
	step, err := c.Step(1)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	msgs := c.ValidateStep(step)
	var want []string
	for _, f := range step.Fields {
		if f.Required && f.Type != schema.FieldSection {
			want = append(want, f.Label+" is required")
		}
	}
	if len(msgs) != len(want) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(want))
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("msgs[%d] = %q, want %q", i, msgs[i], want[i])
		}
	}
}

func fillStep(c *Controller, step schema.Step) {
	for _, f := range step.Fields {
		if !f.Required || f.Type == schema.FieldSection {
			continue
		}
		switch f.Type {
		case schema.FieldCheckbox:
			c.Store().Set(f.Name, true)
		case schema.FieldSelect, schema.FieldRadio:
			c.Store().Set(f.Name, f.Options[len(f.Options)-1])
		case schema.FieldVehicles:
			c.Store().Set(f.Name, entities.EncodeVehicles([]entities.Vehicle{
				{ID: "v1", ModelYear: "2021", Make: "Toyota", Model: "Camry"},
			}))
		case schema.FieldDrivers:
			c.Store().Set(f.Name, entities.EncodeDrivers([]entities.Driver{
				{ID: "driver_1", FirstName: "Jane", LastName: "Doe", IsPrimary: true},
			}))
		default:
			c.Store().Set(f.Name, "x")
		}
	}
}

func TestNextAdvancesAndLandsOnSummary(t *testing.T) {
	c := newController(t, "home-quote")
	pos := c.Start()
	for i := 0; i < c.QuoteType().StepCount(); i++ {
		step, err := c.Step(pos)
		if err != nil {
			t.Fatalf("Step(%d): %v", pos, err)
		}
		c.ApplyStepDefaults(step)
		fillStep(c, step)
		next, msgs := c.Next(pos)
		if len(msgs) > 0 {
			t.Fatalf("step %d rejected: %v", pos, msgs)
		}
		pos = next
	}
	if pos != Summary {
		t.Fatalf("final position = %d, want Summary", pos)
	}
}

func TestPreviousExitsHomeFromStepOne(t *testing.T) {
	c := newController(t, "home-quote")
	if got := c.Previous(1); got != ExitHome {
		t.Fatalf("Previous(1) = %d", got)
	}
	if got := c.Previous(3); got != 2 {
		t.Fatalf("Previous(3) = %d", got)
	}
	if got := c.Previous(Summary); got != Position(c.QuoteType().StepCount()) {
		t.Fatalf("Previous(Summary) = %d", got)
	}
}

func TestNextUnknownStep(t *testing.T) {
	c := newController(t, "home-quote")
	pos, msgs := c.Next(99)
	if pos != 99 || len(msgs) != 1 {
		t.Fatalf("Next(99) = %d, %v", pos, msgs)
	}
}

func TestVehicleStepValidation(t *testing.T) {
	c := newController(t, "auto-quote")
	step := schema.Step{
		ID:     3,
		Role:   schema.RoleVehicles,
		Fields: []schema.Field{{Name: "vehicles", Label: "Vehicles", Type: schema.FieldVehicles}},
	}

	c.Store().Set("vehicles", "[]")
	msgs := c.ValidateStep(step)
	if len(msgs) != 1 || msgs[0] != "At least one vehicle is required" {
		t.Fatalf("empty list msgs = %v", msgs)
	}

	c.Store().Set("vehicles", entities.EncodeVehicles([]entities.Vehicle{
		{ID: "v1", ModelYear: "2021", Make: "Toyota"},
	}))
	msgs = c.ValidateStep(step)
	if len(msgs) != 1 || msgs[0] != "Vehicle 1: Model is required" {
		t.Fatalf("missing model msgs = %v", msgs)
	}

	c.Store().Set("vehicles", "{broken")
	msgs = c.ValidateStep(step)
	if len(msgs) != 1 || msgs[0] != "Vehicle information is invalid" {
		t.Fatalf("malformed msgs = %v", msgs)
	}
}

func TestClaimsValidationOnlyWhenGateOpen(t *testing.T) {
	c := newController(t, "home-quote")
	step := schema.Step{
		ID:     2,
		Role:   schema.RoleClaims,
		Fields: []schema.Field{{Name: "claims", Label: "Claims", Type: schema.FieldClaims}},
	}

	c.Store().Set("claims", entities.EncodeClaims([]entities.Claim{{ID: "c1"}}))
	if msgs := c.ValidateStep(step); len(msgs) != 0 {
		t.Fatalf("gate closed but got %v", msgs)
	}

	c.Store().Set(entities.ClaimsGateField, entities.ClaimsGateYes)
	msgs := c.ValidateStep(step)
	want := []string{
		"Claim 1: Date of Loss is required",
		"Claim 1: Loss is required",
		"Claim 1: Amount is required",
	}
	if len(msgs) != len(want) {
		t.Fatalf("msgs = %v", msgs)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("msgs[%d] = %q, want %q", i, msgs[i], want[i])
		}
	}
}

func TestApplyStepDefaultsDoesNotClobber(t *testing.T) {
	c := newController(t, "home-quote")
	c.Store().Set("personalLiability", "$500,000")
	step := schema.Step{Fields: []schema.Field{
		{Name: "personalLiability", Label: "Personal Liability", Type: schema.FieldSelect},
		{Name: "allOtherPerilsDeductible", Label: "All Other Perils Deductible", Type: schema.FieldSelect},
	}}
	c.ApplyStepDefaults(step)
	if got := c.Store().Get("personalLiability"); got != "$500,000" {
		t.Fatalf("personalLiability = %q", got)
	}
	if got := c.Store().Get("allOtherPerilsDeductible"); got != "$1,000" {
		t.Fatalf("allOtherPerilsDeductible = %q", got)
	}
}

func TestCoverageStepDefaultsPerVehicle(t *testing.T) {
	c := newController(t, "auto-quote")
	c.Store().Set("vehicles", entities.EncodeVehicles([]entities.Vehicle{
		{ID: "v1", ModelYear: "2021", Make: "Toyota", Model: "Camry"},
	}))
	step := schema.Step{
		Role:   schema.RoleCoverage,
		Fields: []schema.Field{{Name: "coverageSelections", Label: "Coverage Selections", Type: schema.FieldCoverage}},
	}
	c.ApplyStepDefaults(step)
	if got := c.Store().Get("bodilyInjury"); got != "100/300" {
		t.Fatalf("bodilyInjury = %q", got)
	}
	if got := c.Store().Get("collision_v1"); got != "$1000 Deductible" {
		t.Fatalf("collision_v1 = %q", got)
	}
}

func TestEstimateBaseValue(t *testing.T) {
	c := newController(t, "home-quote")
	c.Seed(42)
	c.Store().Set("personalProperty", "30")

	got := c.EstimateBaseValue()
	if c.Store().Get("dwellingLimit") != got {
		t.Fatalf("store %q != returned %q", c.Store().Get("dwellingLimit"), got)
	}
	if !strings.HasPrefix(got, "$") || !strings.Contains(got, ",") {
		t.Fatalf("unformatted estimate %q", got)
	}
	if c.Store().Get("personalProperty") != "30" {
		t.Fatalf("chosen percentage clobbered: %q", c.Store().Get("personalProperty"))
	}
	if c.Store().Get("lossOfUse") != "20%" {
		t.Fatalf("lossOfUse default = %q", c.Store().Get("lossOfUse"))
	}

	again := newController(t, "home-quote")
	again.Seed(42)
	if second := again.EstimateBaseValue(); second != got {
		t.Fatalf("seeded estimate not deterministic: %q vs %q", second, got)
	}
}
