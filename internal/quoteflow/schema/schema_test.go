package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinCatalogValidates(t *testing.T) {
	c := Builtin()
	for _, id := range c.IDs() {
		qt, ok := c.Get(id)
		if !ok {
			t.Fatalf("missing quote type %q", id)
		}
		if err := Validate(qt); err != nil {
			t.Fatalf("builtin %q invalid: %v", id, err)
		}
	}
}

func TestBuiltinCatalogOrder(t *testing.T) {
	ids := Builtin().IDs()
	if len(ids) != 2 || ids[0] != "home-quote" || ids[1] != "auto-quote" {
		t.Fatalf("unexpected catalog order %v", ids)
	}
}

func TestValidateRejectsForwardBaseReference(t *testing.T) {
	qt := QuoteType{
		ID:   "test",
		Name: "Test",
		Steps: []Step{
			{ID: 1, Title: "One", Fields: []Field{
				{Name: "pct", Label: "Pct", Type: FieldPctOfBase, BaseField: "base", Options: []string{"10%"}},
				{Name: "base", Label: "Base", Type: FieldCurrency},
			}},
		},
	}
	err := Validate(qt)
	if err == nil || !strings.Contains(err.Error(), "before it is declared") {
		t.Fatalf("expected forward-reference error, got %v", err)
	}
}

func TestValidateAcceptsBackReferenceAcrossSteps(t *testing.T) {
	qt := QuoteType{
		ID:   "test",
		Name: "Test",
		Steps: []Step{
			{ID: 1, Title: "One", Fields: []Field{
				{Name: "base", Label: "Base", Type: FieldCurrency},
			}},
			{ID: 2, Title: "Two", Fields: []Field{
				{Name: "pct", Label: "Pct", Type: FieldPctOfBase, BaseField: "base", Options: []string{"10%"}},
			}},
		},
	}
	if err := Validate(qt); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateRejectsDuplicateFieldNames(t *testing.T) {
	qt := QuoteType{
		ID:   "test",
		Name: "Test",
		Steps: []Step{
			{ID: 1, Title: "One", Fields: []Field{{Name: "a", Label: "A", Type: FieldText}}},
			{ID: 2, Title: "Two", Fields: []Field{{Name: "a", Label: "A again", Type: FieldText}}},
		},
	}
	err := Validate(qt)
	if err == nil || !strings.Contains(err.Error(), "duplicate field name") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestValidateRejectsNonContiguousStepIDs(t *testing.T) {
	qt := QuoteType{
		ID:   "test",
		Name: "Test",
		Steps: []Step{
			{ID: 1, Title: "One"},
			{ID: 3, Title: "Three"},
		},
	}
	if err := Validate(qt); err == nil {
		t.Fatal("expected step id error")
	}
}

func TestValidateRejectsSelectWithoutOptions(t *testing.T) {
	qt := QuoteType{
		ID:   "test",
		Name: "Test",
		Steps: []Step{
			{ID: 1, Title: "One", Fields: []Field{{Name: "s", Label: "S", Type: FieldSelect}}},
		},
	}
	if err := Validate(qt); err == nil {
		t.Fatal("expected options error")
	}
}

func TestLoadDirMergesValidQuoteType(t *testing.T) {
	dir := t.TempDir()
	raw := `id: renters-quote
name: Renters Insurance Quote
base_premium: 300
variation_multiplier: 3
variation_modulus: 400
term_months: 12
steps:
  - id: 1
    title: About You
    fields:
      - name: firstName
        label: First Name
        type: text
        required: true
`
	if err := os.WriteFile(filepath.Join(dir, "renters.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	c := Builtin()
	if problems := LoadDir(c, dir); len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	qt, ok := c.Get("renters-quote")
	if !ok {
		t.Fatal("renters-quote not loaded")
	}
	if qt.Name != "Renters Insurance Quote" {
		t.Fatalf("got name %q", qt.Name)
	}
}

func TestLoadDirReportsInvalidFilesAndKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	good := `id: condo-quote
name: Condo Quote
steps:
  - id: 1
    title: Basics
    fields:
      - name: unit
        label: Unit
        type: text
`
	if err := os.WriteFile(filepath.Join(dir, "condo.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCatalog()
	problems := LoadDir(c, dir)
	if len(problems) != 1 {
		t.Fatalf("expected one problem, got %v", problems)
	}
	if _, ok := c.Get("condo-quote"); !ok {
		t.Fatal("condo-quote should survive a sibling parse failure")
	}
}

func TestLoadDirMissingDirIsNotAnError(t *testing.T) {
	c := NewCatalog()
	if problems := LoadDir(c, filepath.Join(t.TempDir(), "absent")); problems != nil {
		t.Fatalf("expected nil, got %v", problems)
	}
}
