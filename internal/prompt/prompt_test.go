package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTrims(t *testing.T) {
	p := New(strings.NewReader("  hello world  \n"))

	got, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	p := New(strings.NewReader("last"))

	got, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)
}

func TestLineEOF(t *testing.T) {
	p := New(strings.NewReader(""))

	_, err := p.Line("> ")
	assert.Error(t, err)
}

func TestSecretFallsBackWithoutTerminal(t *testing.T) {
	p := New(strings.NewReader("  hunter2  \n"))

	got, err := p.Secret("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{name: "lowercase y", input: "y\n", expect: true},
		{name: "uppercase Y", input: "Y\n", expect: true},
		{name: "yes is not y", input: "yes\n", expect: false},
		{name: "n", input: "n\n", expect: false},
		{name: "empty defaults to no", input: "\n", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input))
			got, err := p.Confirm("Sure? (y/N): ")
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}
