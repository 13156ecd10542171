package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/strongbox-cli/strongbox/internal/output"
	"github.com/strongbox-cli/strongbox/internal/prompt"
	"github.com/strongbox-cli/strongbox/internal/vault"
)

// recordRow is the display shape of a record. Timestamps are preformatted
// so every output mode renders them the same way.
type recordRow struct {
	ID       int
	Name     string
	Username string
	Password string
	AuthKey  string
	Website  string
	Notes    string
	Updated  string
}

func toRows(records []vault.Record) []recordRow {
	rows := make([]recordRow, len(records))
	for i, r := range records {
		rows[i] = recordRow{
			ID:       r.ID,
			Name:     r.Name,
			Username: r.Username,
			Password: r.Password,
			AuthKey:  r.AuthKey,
			Website:  r.Website,
			Notes:    r.Notes,
			Updated:  vault.FormatUpdated(r.UpdatedAt),
		}
	}
	return rows
}

// runAdd walks the add-entry dialogue and persists the new record.
func runAdd(p *prompt.Prompter, v *vault.Vault, store *vault.Store) error {
	fmt.Fprintf(os.Stderr, "=== Add New Entry ===\n")

	name, err := p.Line("Name (e.g., Gmail, Facebook): ")
	if err != nil {
		return err
	}
	username, err := p.Line("Username: ")
	if err != nil {
		return err
	}
	password, err := p.Secret("Password: ")
	if err != nil {
		return err
	}
	authKey, err := p.Line("Authentication key (optional): ")
	if err != nil {
		return err
	}
	website, err := p.Line("Website URL: ")
	if err != nil {
		return err
	}
	notes, err := p.Line("Notes: ")
	if err != nil {
		return err
	}

	rec, err := v.Add(store, vault.Fields{
		Name:     name,
		Username: username,
		Password: password,
		AuthKey:  authKey,
		Website:  website,
		Notes:    notes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Added entry with ID %d.\n", rec.ID)
	return nil
}

// runList prints every record, secrets included.
func runList(store *vault.Store, fp *FormatterProvider) error {
	records := vault.List(store)
	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "No entries found.\n")
		return nil
	}

	columns := []output.Column{
		{Name: "ID", Key: "ID"},
		{Name: "Name", Key: "Name"},
		{Name: "Username", Key: "Username"},
		{Name: "Password", Key: "Password"},
		{Name: "Auth Key", Key: "AuthKey"},
		{Name: "Website", Key: "Website"},
		{Name: "Notes", Key: "Notes", Width: 40},
		{Name: "Last Updated", Key: "Updated"},
	}

	return fp.Formatter.PrintList(toRows(records), columns)
}

// runSearch asks for a keyword and prints matches without secret columns.
func runSearch(p *prompt.Prompter, store *vault.Store, fp *FormatterProvider) error {
	keyword, err := p.Line("Enter keyword (name/username/website/notes): ")
	if err != nil {
		return err
	}

	results, err := vault.Search(store, keyword)
	if err != nil {
		if errors.Is(err, vault.ErrEmptyKeyword) {
			fmt.Fprintf(os.Stderr, "Keyword cannot be empty.\n")
			return nil
		}
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(os.Stderr, "No matching entries.\n")
		return nil
	}

	columns := []output.Column{
		{Name: "ID", Key: "ID"},
		{Name: "Name", Key: "Name"},
		{Name: "Username", Key: "Username"},
		{Name: "Website", Key: "Website"},
		{Name: "Notes", Key: "Notes", Width: 40},
		{Name: "Last Updated", Key: "Updated"},
	}

	return fp.Formatter.PrintList(toRows(results), columns)
}

// runEdit walks the edit dialogue. Blank answers keep the current values;
// the password is only replaced after an explicit yes.
func runEdit(p *prompt.Prompter, v *vault.Vault, store *vault.Store) error {
	id, ok, err := promptID(p, "Enter ID to edit: ")
	if err != nil || !ok {
		return err
	}

	rec, found := vault.Find(store, id)
	if !found {
		fmt.Fprintf(os.Stderr, "Entry not found.\n")
		return nil
	}

	fmt.Fprintf(os.Stderr, "Leave a field blank to keep current value.\n")

	var update vault.Update
	if update.Name, err = editField(p, "Name", rec.Name); err != nil {
		return err
	}
	if update.Username, err = editField(p, "Username", rec.Username); err != nil {
		return err
	}

	changePw, err := p.Confirm("Change password? (y/N): ")
	if err != nil {
		return err
	}
	if changePw {
		pw, err := p.Secret("New Password: ")
		if err != nil {
			return err
		}
		if pw != "" {
			update.Password = &pw
		}
	}

	if update.AuthKey, err = editField(p, "Auth Key", rec.AuthKey); err != nil {
		return err
	}
	if update.Website, err = editField(p, "Website", rec.Website); err != nil {
		return err
	}
	if update.Notes, err = editField(p, "Notes", rec.Notes); err != nil {
		return err
	}

	changed, err := v.Edit(store, id, update)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Entry not found.\n")
			return nil
		}
		return err
	}

	if changed {
		fmt.Fprintf(os.Stderr, "Entry updated.\n")
	} else {
		fmt.Fprintf(os.Stderr, "No changes made.\n")
	}
	return nil
}

// runDelete confirms with the entry's name before removing it.
func runDelete(p *prompt.Prompter, v *vault.Vault, store *vault.Store) error {
	id, ok, err := promptID(p, "Enter ID to delete: ")
	if err != nil || !ok {
		return err
	}

	rec, found := vault.Find(store, id)
	if !found {
		fmt.Fprintf(os.Stderr, "Entry not found.\n")
		return nil
	}

	confirm, err := p.Confirm(fmt.Sprintf("Delete '%s' (ID %d)? (y/N): ", rec.Name, id))
	if err != nil {
		return err
	}

	deleted, err := v.Delete(store, id, confirm)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Entry not found.\n")
			return nil
		}
		return err
	}

	if deleted {
		fmt.Fprintf(os.Stderr, "Entry deleted.\n")
	} else {
		fmt.Fprintf(os.Stderr, "Deletion cancelled.\n")
	}
	return nil
}

// editField shows the current value and reads a replacement. Blank keeps
// the value, reported as nil.
func editField(p *prompt.Prompter, label, current string) (*string, error) {
	fmt.Fprintf(os.Stderr, "Current %s: %s\n", label, current)
	answer, err := p.Line("New " + label + ": ")
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}
	return &answer, nil
}

// promptID reads a numeric entry id. Non-numeric input reports a message
// and aborts the operation without ending the session.
func promptID(p *prompt.Prompter, label string) (int, bool, error) {
	answer, err := p.Line(label)
	if err != nil {
		return 0, false, err
	}

	id, convErr := strconv.Atoi(answer)
	if convErr != nil {
		fmt.Fprintf(os.Stderr, "Invalid ID.\n")
		return 0, false, nil
	}
	return id, true, nil
}
