package auth

import (
	"errors"
	"fmt"
	"os"
)

// MaxAttempts is how many times Login asks for the master password before
// giving up.
const MaxAttempts = 3

var (
	// ErrNotRegistered is returned by Login when no master credential
	// exists yet.
	ErrNotRegistered = errors.New("no master password found")

	// ErrLoginFailed is returned by Login once all attempts are used up.
	ErrLoginFailed = errors.New("too many failed attempts")
)

// Prompter supplies the interactive input the gate dialogues need. Secret
// reads one value with terminal echo disabled.
type Prompter interface {
	Secret(label string) (string, error)
}

// EnsureRegistered walks the first-time setup dialogue when no master
// credential exists yet. It re-prompts until a non-empty password is entered
// twice identically, then registers it. Registered gates return immediately.
func (g *Gate) EnsureRegistered(p Prompter) error {
	cfg, err := g.Load()
	if err != nil {
		return err
	}
	if cfg.Registered() {
		return nil
	}

	fmt.Fprintf(os.Stderr, "=== First-time setup: create a master password ===\n")
	for {
		first, err := p.Secret("Create master password: ")
		if err != nil {
			return err
		}
		second, err := p.Secret("Confirm master password: ")
		if err != nil {
			return err
		}
		if first == "" {
			fmt.Fprintf(os.Stderr, "Master password cannot be empty.\n\n")
			continue
		}
		if first != second {
			fmt.Fprintf(os.Stderr, "Passwords do not match. Try again.\n\n")
			continue
		}

		if err := g.Register(first); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Master password set.\n\n")
		return nil
	}
}

// Login asks for the master password, allowing up to MaxAttempts tries.
// It returns ErrNotRegistered when no credential exists and ErrLoginFailed
// when every attempt was wrong; deciding the process exit is the caller's
// job.
func (g *Gate) Login(p Prompter) error {
	cfg, err := g.Load()
	if err != nil {
		return err
	}
	if !cfg.Registered() {
		return ErrNotRegistered
	}

	fmt.Fprintf(os.Stderr, "=== Login ===\n")
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		secret, err := p.Secret("Enter master password: ")
		if err != nil {
			return err
		}
		if Digest(secret) == cfg.MasterHash {
			fmt.Fprintf(os.Stderr, "Login successful.\n\n")
			return nil
		}
		fmt.Fprintf(os.Stderr, "Incorrect password.\n")
	}

	return ErrLoginFailed
}
