// ABOUTME: Shared CLI helpers and the service bundle commands receive
// ABOUTME: Holds form-error printing used by every add/update command
package cli

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/services"
	"github.com/trellis-crm/trellis/validation"
)

// App bundles the per-entity services the commands operate on.
type App struct {
	Companies  *services.CompanyService
	Contacts   *services.ContactService
	Deals      *services.DealService
	Quotes     *services.QuoteService
	Activities *services.ActivityService
}

// NewApp wires every service to the same store and logger.
func NewApp(store recordstore.Store, log *zap.Logger) *App {
	return &App{
		Companies:  services.NewCompanyService(store, log),
		Contacts:   services.NewContactService(store, log),
		Deals:      services.NewDealService(store, log),
		Quotes:     services.NewQuoteService(store, log),
		Activities: services.NewActivityService(store, log),
	}
}

// printViolations writes per-field messages and returns the aggregate
// error that aborts the submission.
func printViolations(v validation.Violations) error {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, v[field])
	}
	return fmt.Errorf("please fix the errors in the form")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func refString(ref *int) string {
	if ref == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *ref)
}
