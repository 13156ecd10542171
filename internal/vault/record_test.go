package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore() *Store {
	return &Store{
		NextID: 4,
		Items: []Record{
			{ID: 3, Name: "GitHub", Username: "octo", Website: "github.com", Notes: "work account"},
			{ID: 1, Name: "Mail", Username: "sam@example.com", Website: "mail.example.com"},
			{ID: 2, Name: "Bank", Username: "sam", Password: "hunter2", AuthKey: "TOTPSEED", Notes: "joint"},
		},
	}
}

func TestListSortsByID(t *testing.T) {
	s := sampleStore()
	records := List(s)

	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 2, records[1].ID)
	assert.Equal(t, 3, records[2].ID)

	// Store order must survive listing
	assert.Equal(t, 3, s.Items[0].ID)
}

func TestListEmptyStore(t *testing.T) {
	records := List(&Store{NextID: 1, Items: []Record{}})
	assert.Empty(t, records)
}

func TestFind(t *testing.T) {
	s := sampleStore()

	rec, ok := Find(s, 2)
	require.True(t, ok)
	assert.Equal(t, "Bank", rec.Name)

	_, ok = Find(s, 42)
	assert.False(t, ok)
}

func TestFindReturnsCopy(t *testing.T) {
	s := sampleStore()
	rec, ok := Find(s, 1)
	require.True(t, ok)

	rec.Name = "mutated"
	again, _ := Find(s, 1)
	assert.Equal(t, "Mail", again.Name)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		wantIDs []int
	}{
		{
			name:    "matches name case-insensitively",
			keyword: "GITHUB",
			wantIDs: []int{3},
		},
		{
			name:    "matches username substring",
			keyword: "example.com",
			wantIDs: []int{1},
		},
		{
			name:    "matches website",
			keyword: "github.com",
			wantIDs: []int{3},
		},
		{
			name:    "matches notes",
			keyword: "joint",
			wantIDs: []int{2},
		},
		{
			name:    "keyword is trimmed before matching",
			keyword: "  bank  ",
			wantIDs: []int{2},
		},
		{
			name:    "multiple hits keep store order",
			keyword: "sam",
			wantIDs: []int{1, 2},
		},
		{
			name:    "no hits",
			keyword: "nothing-here",
			wantIDs: nil,
		},
		{
			name:    "password is not searched",
			keyword: "hunter2",
			wantIDs: nil,
		},
		{
			name:    "auth key is not searched",
			keyword: "totpseed",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Search(sampleStore(), tt.keyword)
			require.NoError(t, err)

			var ids []int
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchEmptyKeyword(t *testing.T) {
	for _, keyword := range []string{"", "   ", "\t"} {
		_, err := Search(sampleStore(), keyword)
		assert.ErrorIs(t, err, ErrEmptyKeyword)
	}
}

func TestFormatUpdated(t *testing.T) {
	assert.Equal(t, "", FormatUpdated(time.Time{}))

	ts := time.Date(2026, 3, 9, 14, 5, 33, 0, time.Local)
	assert.Equal(t, "2026-03-09 14:05", FormatUpdated(ts))
}
