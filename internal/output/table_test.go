package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxLen   int
		expected string
	}{
		{name: "shorter than max", s: "hello", maxLen: 10, expected: "hello"},
		{name: "equal to max", s: "hello", maxLen: 5, expected: "hello"},
		{name: "longer than max", s: "hello world", maxLen: 8, expected: "hello..."},
		{name: "maxLen less than 3", s: "hello", maxLen: 2, expected: "he"},
		{name: "maxLen exactly 3", s: "hello", maxLen: 3, expected: "..."},
		{name: "empty string", s: "", maxLen: 5, expected: ""},
		{name: "maxLen zero", s: "hello", maxLen: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateString(tt.s, tt.maxLen))
		})
	}
}

func TestRenderTable(t *testing.T) {
	columns := []Column{
		{Name: "ID", Key: "ID"},
		{Name: "Name", Key: "Name"},
		{Name: "Notes", Key: "Notes", Width: 10},
	}
	rows := []map[string]string{
		{"ID": "1", "Name": "Mail", "Notes": "short"},
		{"ID": "2", "Name": "Bank", "Notes": "a very long note indeed"},
	}

	var buf bytes.Buffer
	RenderTable(&buf, columns, rows)

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Mail")
	assert.Contains(t, out, "Bank")
	// Width 10 truncates the long note
	assert.Contains(t, out, "a very ...")
	assert.NotContains(t, out, "a very long note indeed")
}

func TestRenderTableNoRows(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []Column{{Name: "ID", Key: "ID"}}, nil)
	assert.Empty(t, buf.String())
}
