package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/strongbox-cli/strongbox/internal/auth"
	"github.com/strongbox-cli/strongbox/internal/output"
	"github.com/strongbox-cli/strongbox/internal/prompt"
	"github.com/strongbox-cli/strongbox/internal/vault"
)

// MenuCmd unlocks the vault and runs the interactive menu until the user
// exits. It is the default command, so a bare `strongbox` lands here.
type MenuCmd struct{}

// Run executes the menu command
func (cmd *MenuCmd) Run(gate *auth.Gate, v *vault.Vault, fp *FormatterProvider) error {
	p := prompt.New(os.Stdin)

	if err := gate.EnsureRegistered(p); err != nil {
		return err
	}
	if err := gate.Login(p); err != nil {
		if errors.Is(err, auth.ErrNotRegistered) {
			return &output.CLIError{
				Message:  "No master password found. Run setup again.",
				ExitCode: output.ExitAuth,
			}
		}
		if errors.Is(err, auth.ErrLoginFailed) {
			return &output.CLIError{
				Message:  "Too many failed attempts. Exiting.",
				ExitCode: output.ExitAuth,
			}
		}
		return err
	}

	// One load up front; every mutation persists before returning, so the
	// in-memory store stays authoritative for the whole session.
	store, err := v.Load()
	if err != nil {
		return err
	}

	return menuLoop(p, v, store, fp)
}

func menuLoop(p *prompt.Prompter, v *vault.Vault, store *vault.Store, fp *FormatterProvider) error {
	for {
		fmt.Fprintf(os.Stderr, "\n=== Password Manager ===\n")
		fmt.Fprintf(os.Stderr, "1. Add entry\n")
		fmt.Fprintf(os.Stderr, "2. View entries (show passwords)\n")
		fmt.Fprintf(os.Stderr, "3. Search entries\n")
		fmt.Fprintf(os.Stderr, "4. Edit entry\n")
		fmt.Fprintf(os.Stderr, "5. Delete entry\n")
		fmt.Fprintf(os.Stderr, "6. Exit\n")

		choice, err := p.Line("Choose an option: ")
		if err != nil {
			return err
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = runAdd(p, v, store)
		case "2":
			actionErr = runList(store, fp)
		case "3":
			actionErr = runSearch(p, store, fp)
		case "4":
			actionErr = runEdit(p, v, store)
		case "5":
			actionErr = runDelete(p, v, store)
		case "6":
			fmt.Fprintf(os.Stderr, "Goodbye!\n")
			return nil
		default:
			fmt.Fprintf(os.Stderr, "Invalid choice.\n")
		}
		if actionErr != nil {
			return actionErr
		}

		pause(p)
	}
}

// pause holds the screen until Enter so output is readable before the menu
// redraws.
func pause(p *prompt.Prompter) {
	_, _ = p.Line("\nPress Enter to continue...")
}
