package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestUpdateNilNeverErases(t *testing.T) {
	s := Open(NewMemPersister(), "quote-test")
	s.Update(map[string]any{"a": "x"})
	s.Update(map[string]any{"a": nil})
	if got := s.Get("a"); got != "x" {
		t.Fatalf("got %q, want %q", got, "x")
	}
}

func TestUpdateMergesAndOverwrites(t *testing.T) {
	s := Open(NewMemPersister(), "quote-test")
	s.Update(map[string]any{"a": "1", "b": true})
	s.Update(map[string]any{"a": "2"})
	if got := s.Get("a"); got != "2" {
		t.Fatalf("a = %q, want %q", got, "2")
	}
	if !s.GetBool("b") {
		t.Fatal("b should remain true")
	}
}

func TestRoundTripThroughPersistence(t *testing.T) {
	p := NewMemPersister()
	s := Open(p, "quote-test")
	s.Update(map[string]any{
		"firstName":       "Jane",
		"newConstruction": true,
		"hadLosses":       "No",
	})

	reloaded := Open(p, "quote-test")
	if got := reloaded.Get("firstName"); got != "Jane" {
		t.Fatalf("firstName = %q", got)
	}
	if !reloaded.GetBool("newConstruction") {
		t.Fatal("newConstruction should round-trip as true")
	}
	if got := reloaded.Get("hadLosses"); got != "No" {
		t.Fatalf("hadLosses = %q", got)
	}
}

func TestClearRemovesPersistedEntry(t *testing.T) {
	p := NewMemPersister()
	s := Open(p, "quote-test")
	s.Set("a", "x")
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, have %d fields", s.Len())
	}
	reloaded := Open(p, "quote-test")
	if reloaded.Len() != 0 {
		t.Fatal("cleared session should reload empty")
	}
}

func TestOpenDiscardsCorruptedSnapshot(t *testing.T) {
	p := NewMemPersister()
	if err := p.Save("quote-test", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	s := Open(p, "quote-test")
	if s.Len() != 0 {
		t.Fatal("corrupted snapshot should load as empty")
	}
}

func TestGetDefaultsToEmptyString(t *testing.T) {
	s := Open(NewMemPersister(), "quote-test")
	if got := s.Get("missing"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
	s.Set("flag", true)
	if got := s.Get("flag"); got != "" {
		t.Fatalf("boolean read as string should be empty, got %q", got)
	}
}

func TestTruthy(t *testing.T) {
	s := Open(NewMemPersister(), "quote-test")
	s.Update(map[string]any{"name": "Jane", "empty": "", "yes": true, "no": false})
	cases := []struct {
		field string
		want  bool
	}{
		{"name", true},
		{"empty", false},
		{"yes", true},
		{"no", false},
		{"absent", false},
	}
	for _, tc := range cases {
		if got := s.Truthy(tc.field); got != tc.want {
			t.Fatalf("Truthy(%q) = %v, want %v", tc.field, got, tc.want)
		}
	}
}

func TestFilePersisterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := NewFilePersister(dir)
	s := Open(p, "quote-home-quote")
	s.Set("city", "Tampa")

	if _, err := os.Stat(filepath.Join(dir, "quote-home-quote.json")); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}

	reloaded := Open(NewFilePersister(dir), "quote-home-quote")
	if got := reloaded.Get("city"); got != "Tampa" {
		t.Fatalf("city = %q", got)
	}

	reloaded.Clear()
	if _, err := os.Stat(filepath.Join(dir, "quote-home-quote.json")); !os.IsNotExist(err) {
		t.Fatalf("snapshot should be removed, stat err = %v", err)
	}
}

type failingPersister struct{}

func (failingPersister) Load(string) ([]byte, error) { return nil, errors.New("storage offline") }
func (failingPersister) Save(string, []byte) error   { return errors.New("storage offline") }
func (failingPersister) Delete(string) error         { return errors.New("storage offline") }

func TestPersistenceFailuresAreSwallowed(t *testing.T) {
	s := Open(failingPersister{}, "quote-test")
	s.Set("a", "x")
	if got := s.Get("a"); got != "x" {
		t.Fatalf("in-memory state should survive persist failure, got %q", got)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatal("clear should reset state even when delete fails")
	}
}
