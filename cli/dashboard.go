// ABOUTME: Dashboard CLI command
// ABOUTME: Prints the ASCII pipeline overview
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/trellis-crm/trellis/viz"
)

// DashboardCommand renders the pipeline dashboard.
func DashboardCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	fs.Parse(args)

	stats := viz.GenerateDashboardStats(context.Background(), viz.Loader{
		Companies:  app.Companies,
		Contacts:   app.Contacts,
		Deals:      app.Deals,
		Quotes:     app.Quotes,
		Activities: app.Activities,
	})

	fmt.Print(viz.RenderDashboard(stats))
	return nil
}
