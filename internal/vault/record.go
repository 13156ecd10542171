package vault

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("entry not found")

// ErrEmptyKeyword is returned by Search for a blank keyword.
var ErrEmptyKeyword = errors.New("search keyword cannot be empty")

// Record is a single stored credential entry.
type Record struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	AuthKey   string    `json:"auth_key"`
	Website   string    `json:"website"`
	Notes     string    `json:"notes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is the in-memory form of the vault file. NextID is strictly greater
// than every id ever issued, so deleted ids are never reused.
type Store struct {
	NextID int      `json:"next_id"`
	Items  []Record `json:"items"`
}

// List returns copies of all records sorted ascending by id.
func List(s *Store) []Record {
	out := make([]Record, len(s.Items))
	copy(out, s.Items)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Find returns a copy of the record with the given id.
func Find(s *Store, id int) (Record, bool) {
	for _, r := range s.Items {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Search returns copies of the records whose name, username, website or
// notes contain the keyword, case-insensitively. Password and auth key are
// never searched. Results keep store order.
func Search(s *Store, keyword string) ([]Record, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	needle := strings.ToLower(keyword)
	var out []Record
	for _, r := range s.Items {
		if strings.Contains(searchText(r), needle) {
			out = append(out, r)
		}
	}
	return out, nil
}

// searchText is the lowercased haystack a keyword is matched against.
func searchText(r Record) string {
	joined := strings.Join([]string{r.Name, r.Username, r.Website, r.Notes}, " ")
	return strings.ToLower(joined)
}

// FormatUpdated renders a record timestamp for display. Zero times render
// as an empty string.
func FormatUpdated(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
