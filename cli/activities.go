// ABOUTME: Activity CLI commands
// ABOUTME: Log and list timeline activities against contacts and deals
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

// LogActivityCommand validates and records an activity.
func LogActivityCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("log-activity", flag.ExitOnError)
	contactID := fs.String("contact", "", "Contact ID (required)")
	dealID := fs.String("deal", "", "Deal ID")
	activityType := fs.String("type", "", "Activity type: call, email, meeting, note (required)")
	description := fs.String("description", "", "What happened (required)")
	date := fs.String("date", "", "Activity date (default now)")
	userID := fs.String("user", "", "Acting user id")
	fs.Parse(args)

	v := validation.ValidateActivity(map[string]string{
		"contact_id_c":  *contactID,
		"type_c":        *activityType,
		"description_c": *description,
	})
	if !v.Empty() {
		return printViolations(v)
	}

	input := map[string]any{
		"contactId":   *contactID,
		"type":        *activityType,
		"description": *description,
		"date":        *date,
		"userId":      *userID,
	}
	if *dealID != "" {
		input["dealId"] = *dealID
	}

	activity := app.Activities.Create(context.Background(), input)
	if activity == nil {
		return fmt.Errorf("failed to log activity")
	}

	fmt.Printf("✓ Activity logged: %s (ID: %d)\n", activity.Type, activity.ID)
	return nil
}

// ListActivitiesCommand lists activities, newest first.
func ListActivitiesCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-activities", flag.ExitOnError)
	fs.Parse(args)

	activities := app.Activities.List(context.Background())
	if len(activities) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tCONTACT\tDEAL\tDESCRIPTION")
	fmt.Fprintln(w, "--\t----\t----\t-------\t----\t-----------")
	for _, a := range activities {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			dateutil.FormatSafely(a.Date, "Jan 2, 2006", "-"),
			a.Type, refString(a.ContactID), refString(a.DealID), a.Description)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d activity(ies)\n", len(activities))
	return nil
}
