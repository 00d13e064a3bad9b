// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing contacts
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/trellis-crm/trellis/dateutil"
	"github.com/trellis-crm/trellis/validation"
)

// AddContactCommand validates and creates a new contact.
func AddContactCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	firstName := fs.String("first-name", "", "First name (required)")
	lastName := fs.String("last-name", "", "Last name (required)")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	status := fs.String("status", "", "Status (default Lead)")
	tags := fs.String("tags", "", "Comma-separated tags")
	fs.Parse(args)

	v := validation.ValidateContact(map[string]string{
		"first_name_c": *firstName,
		"last_name_c":  *lastName,
	})
	if !v.Empty() {
		return printViolations(v)
	}

	contact := app.Contacts.Create(context.Background(), map[string]any{
		"firstName": *firstName,
		"lastName":  *lastName,
		"email":     *email,
		"phone":     *phone,
		"company":   *company,
		"status":    *status,
		"tags":      *tags,
	})
	if contact == nil {
		return fmt.Errorf("failed to create contact")
	}

	fmt.Printf("✓ Contact created: %s (ID: %d)\n", contact.FullName(), contact.ID)
	if contact.Email != "" {
		fmt.Printf("  Email: %s\n", contact.Email)
	}
	return nil
}

// ListContactsCommand lists all contacts.
func ListContactsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	fs.Parse(args)

	contacts := app.Contacts.List(context.Background())
	if len(contacts) == 0 {
		fmt.Println("No contacts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOMPANY\tSTATUS\tLAST ACTIVITY")
	fmt.Fprintln(w, "--\t----\t-----\t-------\t------\t-------------")
	for _, c := range contacts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FullName(), dash(c.Email), dash(c.Company), dash(c.Status),
			dateutil.FormatSafely(c.LastActivity, "Jan 2, 2006", "-"))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d contact(s)\n", len(contacts))
	return nil
}

// UpdateContactCommand validates and updates an existing contact.
func UpdateContactCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update-contact", flag.ExitOnError)
	id := fs.Int("id", 0, "Contact ID (required)")
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	status := fs.String("status", "", "Status")
	tags := fs.String("tags", "", "Comma-separated tags")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	existing := app.Contacts.Get(context.Background(), *id)
	if existing == nil {
		return fmt.Errorf("contact %d not found", *id)
	}

	merge := func(flagValue, current string) string {
		if flagValue != "" {
			return flagValue
		}
		return current
	}
	first := merge(*firstName, existing.FirstName)
	last := merge(*lastName, existing.LastName)

	v := validation.ValidateContact(map[string]string{
		"first_name_c": first,
		"last_name_c":  last,
	})
	if !v.Empty() {
		return printViolations(v)
	}

	contact := app.Contacts.Update(context.Background(), *id, map[string]any{
		"firstName":    first,
		"lastName":     last,
		"email":        merge(*email, existing.Email),
		"phone":        merge(*phone, existing.Phone),
		"company":      merge(*company, existing.Company),
		"status":       merge(*status, existing.Status),
		"tags":         merge(*tags, existing.Tags),
		"createdAt":    existing.CreatedAt,
		"lastActivity": existing.LastActivity,
	})
	if contact == nil {
		return fmt.Errorf("failed to update contact %d", *id)
	}

	fmt.Printf("✓ Contact updated: %s (ID: %d)\n", contact.FullName(), contact.ID)
	return nil
}

// DeleteContactCommand deletes a contact by id.
func DeleteContactCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("delete-contact", flag.ExitOnError)
	id := fs.Int("id", 0, "Contact ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	if !app.Contacts.Delete(context.Background(), *id) {
		return fmt.Errorf("failed to delete contact %d", *id)
	}
	fmt.Printf("✓ Contact %d deleted\n", *id)
	return nil
}
