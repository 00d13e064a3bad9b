// ABOUTME: Deal CLI commands
// ABOUTME: Pipeline management including stage moves
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/trellis-crm/trellis/dateutil"
	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/validation"
)

// AddDealCommand validates and creates a new deal.
func AddDealCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add-deal", flag.ExitOnError)
	title := fs.String("title", "", "Deal title (required)")
	contactID := fs.String("contact", "", "Contact ID (required)")
	value := fs.String("value", "", "Deal value")
	stage := fs.String("stage", "", "Stage (default Lead)")
	probability := fs.String("probability", "", "Close probability 0-100")
	closeDate := fs.String("close-date", "", "Expected close date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "Notes")
	fs.Parse(args)

	v := validation.ValidateDeal(map[string]string{
		"title_c":       *title,
		"contact_id_c":  *contactID,
		"value_c":       *value,
		"probability_c": *probability,
	})
	if !v.Empty() {
		return printViolations(v)
	}

	input := map[string]any{
		"title":             *title,
		"contactId":         *contactID,
		"stage":             *stage,
		"expectedCloseDate": *closeDate,
		"notes":             *notes,
	}
	if *value != "" {
		input["value"] = *value
	}
	if *probability != "" {
		input["probability"] = *probability
	}

	deal := app.Deals.Create(context.Background(), input)
	if deal == nil {
		return fmt.Errorf("failed to create deal")
	}

	fmt.Printf("✓ Deal created: %s (ID: %d)\n", deal.Title, deal.ID)
	fmt.Printf("  Stage: %s  Value: $%.2f\n", deal.Stage, deal.Value)
	return nil
}

// ListDealsCommand lists all deals.
func ListDealsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-deals", flag.ExitOnError)
	stage := fs.String("stage", "", "Filter by stage")
	fs.Parse(args)

	deals := app.Deals.List(context.Background())
	if *stage != "" {
		filtered := deals[:0]
		for _, d := range deals {
			if d.Stage == *stage {
				filtered = append(filtered, d)
			}
		}
		deals = filtered
	}

	if len(deals) == 0 {
		fmt.Println("No deals found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTAGE\tVALUE\tPROB\tCLOSE DATE")
	fmt.Fprintln(w, "--\t-----\t-----\t-----\t----\t----------")
	for _, d := range deals {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%d%%\t%s\n",
			d.ID, d.Title, d.Stage, d.Value, d.Probability,
			dateutil.FormatSafely(d.ExpectedCloseDate, "Jan 2, 2006", "-"))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d deal(s)\n", len(deals))
	return nil
}

// UpdateDealCommand validates and updates an existing deal.
func UpdateDealCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update-deal", flag.ExitOnError)
	id := fs.Int("id", 0, "Deal ID (required)")
	title := fs.String("title", "", "Deal title")
	contactID := fs.String("contact", "", "Contact ID")
	value := fs.String("value", "", "Deal value")
	stage := fs.String("stage", "", "Stage")
	probability := fs.String("probability", "", "Close probability 0-100")
	closeDate := fs.String("close-date", "", "Expected close date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "Notes")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	existing := app.Deals.Get(context.Background(), *id)
	if existing == nil {
		return fmt.Errorf("deal %d not found", *id)
	}

	// Unset flags keep the current value
	mergedTitle := *title
	if mergedTitle == "" {
		mergedTitle = existing.Title
	}
	mergedContact := *contactID
	if mergedContact == "" && existing.ContactID != nil {
		mergedContact = fmt.Sprintf("%d", *existing.ContactID)
	}

	v := validation.ValidateDeal(map[string]string{
		"title_c":       mergedTitle,
		"contact_id_c":  mergedContact,
		"value_c":       *value,
		"probability_c": *probability,
	})
	if !v.Empty() {
		return printViolations(v)
	}

	input := map[string]any{
		"title":     mergedTitle,
		"contactId": mergedContact,
	}
	if *value != "" {
		input["value"] = *value
	} else {
		input["value"] = existing.Value
	}
	if *probability != "" {
		input["probability"] = *probability
	} else {
		input["probability"] = existing.Probability
	}
	if *stage != "" {
		input["stage"] = *stage
	} else {
		input["stage"] = existing.Stage
	}
	if *closeDate != "" {
		input["expectedCloseDate"] = *closeDate
	} else {
		input["expectedCloseDate"] = existing.ExpectedCloseDate
	}
	if *notes != "" {
		input["notes"] = *notes
	} else {
		input["notes"] = existing.Notes
	}
	input["createdAt"] = existing.CreatedAt

	deal := app.Deals.Update(context.Background(), *id, input)
	if deal == nil {
		return fmt.Errorf("failed to update deal %d", *id)
	}

	fmt.Printf("✓ Deal updated: %s (ID: %d)\n", deal.Title, deal.ID)
	return nil
}

// MoveDealCommand moves a deal to another pipeline stage.
func MoveDealCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("move-deal", flag.ExitOnError)
	id := fs.Int("id", 0, "Deal ID (required)")
	stage := fs.String("stage", "", "Target stage (required)")
	fs.Parse(args)

	if *id == 0 || *stage == "" {
		return fmt.Errorf("--id and --stage are required")
	}

	valid := false
	for _, s := range models.Stages {
		if s == *stage {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown stage %q (valid: %v)", *stage, models.Stages)
	}

	deal := app.Deals.MoveStage(context.Background(), *id, *stage)
	if deal == nil {
		return fmt.Errorf("failed to move deal %d", *id)
	}

	fmt.Printf("✓ Deal %d moved to %s\n", deal.ID, deal.Stage)
	return nil
}

// DeleteDealCommand deletes a deal by id.
func DeleteDealCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("delete-deal", flag.ExitOnError)
	id := fs.Int("id", 0, "Deal ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	if !app.Deals.Delete(context.Background(), *id) {
		return fmt.Errorf("failed to delete deal %d", *id)
	}
	fmt.Printf("✓ Deal %d deleted\n", *id)
	return nil
}
