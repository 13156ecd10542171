// Package vault persists credential records in a single JSON file and
// implements the operations the interactive menu is built from. The file is
// rewritten whole on every mutation; a sibling .lock file guards the
// read-modify-write so two invocations cannot interleave a rewrite.
package vault

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// Vault is a handle bound to one store file. It keeps no record state of its
// own; callers load a *Store once and pass it back in.
type Vault struct {
	path     string // Path to the store file
	lockPath string // Path to lock file
}

// New returns a vault handle for the given store file path.
func New(path string) *Vault {
	return &Vault{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the store file location.
func (v *Vault) Path() string {
	return v.path
}

// Fields carries the text fields of a new record.
type Fields struct {
	Name     string
	Username string
	Password string
	AuthKey  string
	Website  string
	Notes    string
}

// Update carries optional replacement values for Edit. A nil field keeps the
// stored value; a non-nil field replaces it, empty string included.
type Update struct {
	Name     *string
	Username *string
	Password *string
	AuthKey  *string
	Website  *string
	Notes    *string
}

// lock acquires the store file lock. The returned release func must be
// called once the file operation completes.
func (v *Vault) lock() (release func(), err error) {
	fl := flock.New(v.lockPath)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to acquire lock: timeout")
	}
	return func() { _ = fl.Unlock() }, nil
}

// Load reads the store file. A file that is absent, empty or unreadable as
// JSON yields a fresh empty store which is persisted immediately, so a
// damaged vault heals itself instead of blocking the user.
func (v *Vault) Load() (*Store, error) {
	release, err := v.lock()
	if err != nil {
		return nil, err
	}
	defer release()

	store, wantReset, err := v.readStore()
	if err != nil {
		return nil, err
	}
	if wantReset {
		store = freshStore()
		if err := v.writeStore(store); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Save rewrites the store file with the given contents.
func (v *Vault) Save(s *Store) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()

	return v.writeStore(s)
}

// Add allocates the next id, appends a record with the given fields and
// persists. No field is validated; an all-empty record is legal.
func (v *Vault) Add(s *Store, f Fields) (Record, error) {
	rec := Record{
		ID:        s.NextID,
		Name:      f.Name,
		Username:  f.Username,
		Password:  f.Password,
		AuthKey:   f.AuthKey,
		Website:   f.Website,
		Notes:     f.Notes,
		UpdatedAt: time.Now(),
	}
	s.NextID++
	s.Items = append(s.Items, rec)

	if err := v.Save(s); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Edit applies the non-nil fields of u to the record with the given id.
// It reports changed=true and persists only when at least one applied value
// differs from the stored one; re-supplying current values leaves the record
// and its timestamp untouched.
func (v *Vault) Edit(s *Store, id int, u Update) (changed bool, err error) {
	idx := -1
	for i := range s.Items {
		if s.Items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, ErrNotFound
	}

	rec := &s.Items[idx]
	apply := func(dst *string, src *string) {
		if src != nil && *src != *dst {
			*dst = *src
			changed = true
		}
	}
	apply(&rec.Name, u.Name)
	apply(&rec.Username, u.Username)
	apply(&rec.Password, u.Password)
	apply(&rec.AuthKey, u.AuthKey)
	apply(&rec.Website, u.Website)
	apply(&rec.Notes, u.Notes)

	if !changed {
		return false, nil
	}

	rec.UpdatedAt = time.Now()
	if err := v.Save(s); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the record with the given id once the caller confirms.
// With confirm=false the call is a cancelled no-op. NextID is never lowered,
// so the removed id stays retired.
func (v *Vault) Delete(s *Store, id int, confirm bool) (deleted bool, err error) {
	idx := -1
	for i := range s.Items {
		if s.Items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, ErrNotFound
	}
	if !confirm {
		return false, nil
	}

	s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
	if err := v.Save(s); err != nil {
		return false, err
	}
	return true, nil
}
