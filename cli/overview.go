// ABOUTME: Overview command joining the quote page's parallel loads
// ABOUTME: Fetches quotes, contacts, and deals concurrently before rendering
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/trellis-crm/trellis/dateutil"
	"github.com/trellis-crm/trellis/models"
)

// OverviewCommand renders quotes with their linked contact and deal
// names. The three loads run as an unordered parallel batch and are
// joined before anything renders; one load cycle, one consistent view.
func OverviewCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("overview", flag.ExitOnError)
	fs.Parse(args)

	var (
		quotes   []models.Quote
		contacts []models.Contact
		deals    []models.Deal
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		quotes = app.Quotes.List(ctx)
		return ctx.Err()
	})
	g.Go(func() error {
		contacts = app.Contacts.List(ctx)
		return ctx.Err()
	})
	g.Go(func() error {
		deals = app.Deals.List(ctx)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("overview load failed: %w", err)
	}

	contactNames := make(map[int]string, len(contacts))
	for _, c := range contacts {
		contactNames[c.ID] = c.FullName()
	}
	dealTitles := make(map[int]string, len(deals))
	for _, d := range deals {
		dealTitles[d.ID] = d.Title
	}

	if len(quotes) == 0 {
		fmt.Println("No quotes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUOTE\tCOMPANY\tSTATUS\tCONTACT\tDEAL\tEXPIRES")
	fmt.Fprintln(w, "-----\t-------\t------\t-------\t----\t-------")
	for _, q := range quotes {
		contactName := "-"
		if q.ContactID != nil {
			if name, ok := contactNames[*q.ContactID]; ok {
				contactName = name
			}
		}
		dealTitle := "-"
		if q.DealID != nil {
			if title, ok := dealTitles[*q.DealID]; ok {
				dealTitle = title
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			q.Name, dash(q.Company), q.Status, contactName, dealTitle,
			dateutil.FormatSafely(q.ExpiresOn, "Jan 2, 2006", "-"))
	}
	w.Flush()

	fmt.Printf("\n%d quote(s), %d contact(s), %d deal(s)\n",
		len(quotes), len(contacts), len(deals))
	return nil
}
