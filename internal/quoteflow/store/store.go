// Package store holds the session-scoped form state accumulated across
// wizard steps: a string-keyed map of field values (strings or booleans)
// with write-through persistence to a client-side scope. One Store is owned
// by exactly one quote session; there is no cross-session sharing.
package store

import (
	"log/slog"

	json "github.com/goccy/go-json"
)

// Persister is the narrow contract to persistent client-side storage:
// key to serialized snapshot, nothing more.
type Persister interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// Store is the mutable form state for one quote session. Values are strings
// or booleans; entity lists live here too, as JSON-encoded strings under a
// single key. Every mutation persists synchronously before returning, so a
// subsequent read never observes stale persisted data.
type Store struct {
	key       string
	data      map[string]any
	persister Persister
}

// Open creates the store for sessionKey and rehydrates any persisted
// snapshot. A corrupted snapshot is discarded and the store starts empty;
// read failures never propagate to the caller.
func Open(p Persister, sessionKey string) *Store {
	s := &Store{key: sessionKey, data: map[string]any{}, persister: p}
	raw, err := p.Load(sessionKey)
	if err != nil || len(raw) == 0 {
		return s
	}
	var loaded map[string]any
	if err := json.Unmarshal(raw, &loaded); err != nil {
		slog.Warn("discarding corrupted session snapshot", "key", sessionKey, "error", err)
		return s
	}
	for name, v := range loaded {
		switch val := v.(type) {
		case string:
			s.data[name] = val
		case bool:
			s.data[name] = val
		}
	}
	return s
}

// Update merges partial into the current state. A nil value is a no-op for
// that field, never a deletion; values other than string or bool are
// ignored. The merged state is persisted before Update returns.
func (s *Store) Update(partial map[string]any) {
	changed := false
	for name, v := range partial {
		if v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			s.data[name] = val
			changed = true
		case bool:
			s.data[name] = val
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

// Set stores a single field value.
func (s *Store) Set(name string, value any) {
	s.Update(map[string]any{name: value})
}

// Get returns the current string value of name, or "" when absent or when
// the field holds a boolean.
func (s *Store) Get(name string) string {
	if v, ok := s.data[name].(string); ok {
		return v
	}
	return ""
}

// GetBool returns the boolean value of name; absent or string-typed fields
// read as false.
func (s *Store) GetBool(name string) bool {
	if v, ok := s.data[name].(bool); ok {
		return v
	}
	return false
}

// Has reports whether name holds any value.
func (s *Store) Has(name string) bool {
	_, ok := s.data[name]
	return ok
}

// Truthy reports whether name holds a non-empty string or a true boolean.
// This is the requiredness check: "", false, and absent are all falsy.
func (s *Store) Truthy(name string) bool {
	switch v := s.data[name].(type) {
	case string:
		return v != ""
	case bool:
		return v
	}
	return false
}

// Clear resets the state to empty and removes the persisted entry.
func (s *Store) Clear() {
	s.data = map[string]any{}
	if err := s.persister.Delete(s.key); err != nil {
		slog.Warn("session delete failed", "key", s.key, "error", err)
	}
}

// Snapshot returns a copy of the current state for read-only consumers.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Len returns the number of stored fields.
func (s *Store) Len() int {
	return len(s.data)
}

// SerializedLen is the length of the canonical serialized snapshot. The
// summary composer feeds it into the placeholder premium variation.
func (s *Store) SerializedLen() int {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return 0
	}
	return len(raw)
}

// persist writes the serialized snapshot through to storage. Failures are
// logged and swallowed; the in-memory state stays authoritative.
func (s *Store) persist() {
	raw, err := json.Marshal(s.data)
	if err != nil {
		slog.Warn("session serialize failed", "key", s.key, "error", err)
		return
	}
	if err := s.persister.Save(s.key, raw); err != nil {
		slog.Warn("session persist failed", "key", s.key, "error", err)
	}
}
