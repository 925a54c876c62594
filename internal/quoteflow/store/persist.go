package store

import (
	"os"
	"path/filepath"
)

// FilePersister stores one JSON snapshot per session key under a directory,
// as <key>.json. It is the default client-side scope for wizard sessions.
type FilePersister struct {
	Dir string
}

func NewFilePersister(dir string) *FilePersister {
	return &FilePersister{Dir: dir}
}

func (p *FilePersister) path(key string) string {
	return filepath.Join(p.Dir, key+".json")
}

func (p *FilePersister) Load(key string) ([]byte, error) {
	raw, err := os.ReadFile(p.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return raw, err
}

func (p *FilePersister) Save(key string, data []byte) error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path(key), data, 0o644)
}

func (p *FilePersister) Delete(key string) error {
	err := os.Remove(p.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemPersister keeps snapshots in memory. Tests and one-shot CLI reads use
// it when touching disk is unwanted.
type MemPersister struct {
	snapshots map[string][]byte
}

func NewMemPersister() *MemPersister {
	return &MemPersister{snapshots: map[string][]byte{}}
}

func (p *MemPersister) Load(key string) ([]byte, error) {
	return p.snapshots[key], nil
}

func (p *MemPersister) Save(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	p.snapshots[key] = cp
	return nil
}

func (p *MemPersister) Delete(key string) error {
	delete(p.snapshots, key)
	return nil
}
