package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// freshStore is the state a new or unreadable vault file is reset to.
func freshStore() *Store {
	return &Store{NextID: 1, Items: []Record{}}
}

// readStore parses the vault file. It reports wantReset for the states the
// store silently recovers from: file absent, empty, unparsable, or carrying
// a nonsensical next_id. Other failures (permissions, I/O) are real errors.
// Callers must hold the file lock.
func (v *Vault) readStore() (s *Store, wantReset bool, err error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("failed to read store: %w", err)
	}

	var store Store
	if err := json5.Unmarshal(data, &store); err != nil {
		return nil, true, nil
	}
	if store.NextID < 1 {
		return nil, true, nil
	}

	// Repair next_id if it lags behind an existing id, so allocation can
	// never hand out a duplicate.
	for _, r := range store.Items {
		if r.ID >= store.NextID {
			store.NextID = r.ID + 1
		}
	}
	if store.Items == nil {
		store.Items = []Record{}
	}

	return &store, false, nil
}

// writeStore persists the whole store: tmp file → fsync → rename, so a
// crash mid-write never truncates the previous contents. Callers must hold
// the file lock.
func (v *Vault) writeStore(s *Store) error {
	dir := filepath.Dir(v.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// Marshal to JSON (not JSON5 for writing - JSON is valid JSON5)
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".strongbox-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, v.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	success = true
	return nil
}
