// Package prompt reads interactive answers for the menu and the master
// password dialogues. Labels go to stderr so stdout stays clean for
// formatted output.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads lines and secrets from one input source. When the source
// is a terminal, secrets are read with echo disabled; otherwise they fall
// back to plain line reads so scripted input keeps working.
type Prompter struct {
	reader   *bufio.Reader
	fd       int
	terminal bool
}

// New returns a prompter reading from r.
func New(r io.Reader) *Prompter {
	p := &Prompter{reader: bufio.NewReader(r)}
	if f, ok := r.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			p.fd = fd
			p.terminal = true
		}
	}
	return p
}

// Line prints a label and reads one line of input, trimmed of surrounding
// whitespace.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Secret reads one value with terminal echo disabled.
func (p *Prompter) Secret(label string) (string, error) {
	if !p.terminal {
		return p.Line(label)
	}

	fmt.Fprint(os.Stderr, label)
	raw, err := term.ReadPassword(p.fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Confirm asks a y/N question. Anything but "y" counts as no.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Line(label)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}
