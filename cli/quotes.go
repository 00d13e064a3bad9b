// ABOUTME: Quote CLI commands
// ABOUTME: Quote creation with billing/shipping blocks and status moves
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

// AddQuoteCommand validates and creates a new quote.
func AddQuoteCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add-quote", flag.ExitOnError)
	name := fs.String("name", "", "Quote name (required)")
	company := fs.String("company", "", "Company (required)")
	contactID := fs.String("contact", "", "Contact ID")
	dealID := fs.String("deal", "", "Deal ID")
	quoteDate := fs.String("quote-date", "", "Quote date YYYY-MM-DD (required)")
	expiresOn := fs.String("expires-on", "", "Expiry date YYYY-MM-DD (required)")
	status := fs.String("status", "", "Status (default Draft)")
	delivery := fs.String("delivery", "", "Delivery method")
	tags := fs.String("tags", "", "Comma-separated tags")

	billName := fs.String("bill-name", "", "Billing name")
	billStreet := fs.String("bill-street", "", "Billing street")
	billCity := fs.String("bill-city", "", "Billing city")
	billState := fs.String("bill-state", "", "Billing state")
	billCountry := fs.String("bill-country", "", "Billing country")
	billPincode := fs.String("bill-pincode", "", "Billing postal code")

	shipName := fs.String("ship-name", "", "Shipping name")
	shipStreet := fs.String("ship-street", "", "Shipping street")
	shipCity := fs.String("ship-city", "", "Shipping city")
	shipState := fs.String("ship-state", "", "Shipping state")
	shipCountry := fs.String("ship-country", "", "Shipping country")
	shipPincode := fs.String("ship-pincode", "", "Shipping postal code")

	copyBilling := fs.Bool("ship-same-as-bill", false, "Copy billing block to shipping")
	fs.Parse(args)

	v := validation.ValidateQuote(map[string]string{
		"Name":         *name,
		"company_c":    *company,
		"quote_date_c": *quoteDate,
		"expires_on_c": *expiresOn,
	})
	if !v.Empty() {
		return printViolations(v)
	}

	if *copyBilling {
		*shipName, *shipStreet, *shipCity = *billName, *billStreet, *billCity
		*shipState, *shipCountry, *shipPincode = *billState, *billCountry, *billPincode
	}

	input := map[string]any{
		"name":           *name,
		"company":        *company,
		"quoteDate":      *quoteDate,
		"expiresOn":      *expiresOn,
		"status":         *status,
		"deliveryMethod": *delivery,
		"tags":           *tags,
		"billToName":     *billName,
		"billToStreet":   *billStreet,
		"billToCity":     *billCity,
		"billToState":    *billState,
		"billToCountry":  *billCountry,
		"billToPincode":  *billPincode,
		"shipToName":     *shipName,
		"shipToStreet":   *shipStreet,
		"shipToCity":     *shipCity,
		"shipToState":    *shipState,
		"shipToCountry":  *shipCountry,
		"shipToPincode":  *shipPincode,
	}
	if *contactID != "" {
		input["contactId"] = *contactID
	}
	if *dealID != "" {
		input["dealId"] = *dealID
	}

	quote := app.Quotes.Create(context.Background(), input)
	if quote == nil {
		return fmt.Errorf("failed to create quote")
	}

	fmt.Printf("✓ Quote created: %s (ID: %d)\n", quote.Name, quote.ID)
	fmt.Printf("  Status: %s  Expires: %s\n", quote.Status,
		dateutil.FormatSafely(quote.ExpiresOn, "Jan 2, 2006", "-"))
	return nil
}

// ListQuotesCommand lists all quotes.
func ListQuotesCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-quotes", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status")
	fs.Parse(args)

	quotes := app.Quotes.List(context.Background())
	if *status != "" {
		filtered := quotes[:0]
		for _, q := range quotes {
			if q.Status == *status {
				filtered = append(filtered, q)
			}
		}
		quotes = filtered
	}

	if len(quotes) == 0 {
		fmt.Println("No quotes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tSTATUS\tQUOTE DATE\tEXPIRES\tCONTACT\tDEAL")
	fmt.Fprintln(w, "--\t----\t-------\t------\t----------\t-------\t-------\t----")
	for _, q := range quotes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			q.ID, q.Name, dash(q.Company), q.Status,
			dateutil.FormatSafely(q.QuoteDate, "Jan 2, 2006", "-"),
			dateutil.FormatSafely(q.ExpiresOn, "Jan 2, 2006", "-"),
			refString(q.ContactID), refString(q.DealID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d quote(s)\n", len(quotes))
	return nil
}

// UpdateQuoteCommand validates and updates an existing quote.
func UpdateQuoteCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update-quote", flag.ExitOnError)
	id := fs.Int("id", 0, "Quote ID (required)")
	name := fs.String("name", "", "Quote name")
	company := fs.String("company", "", "Company")
	quoteDate := fs.String("quote-date", "", "Quote date YYYY-MM-DD")
	expiresOn := fs.String("expires-on", "", "Expiry date YYYY-MM-DD")
	status := fs.String("status", "", "Status")
	delivery := fs.String("delivery", "", "Delivery method")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	existing := app.Quotes.Get(context.Background(), *id)
	if existing == nil {
		return fmt.Errorf("quote %d not found", *id)
	}

	// Unset flags keep the current value
	merge := func(flagValue, current string) string {
		if flagValue != "" {
			return flagValue
		}
		return current
	}
	merged := map[string]string{
		"Name":         merge(*name, existing.Name),
		"company_c":    merge(*company, existing.Company),
		"quote_date_c": merge(*quoteDate, existing.QuoteDate),
		"expires_on_c": merge(*expiresOn, existing.ExpiresOn),
	}
	if v := validation.ValidateQuote(merged); !v.Empty() {
		return printViolations(v)
	}

	input := map[string]any{
		"name":           merged["Name"],
		"company":        merged["company_c"],
		"quoteDate":      merged["quote_date_c"],
		"expiresOn":      merged["expires_on_c"],
		"status":         merge(*status, existing.Status),
		"deliveryMethod": merge(*delivery, existing.DeliveryMethod),
		"tags":           existing.Tags,
		"billToName":     existing.BillTo.Name,
		"billToStreet":   existing.BillTo.Street,
		"billToCity":     existing.BillTo.City,
		"billToState":    existing.BillTo.State,
		"billToCountry":  existing.BillTo.Country,
		"billToPincode":  existing.BillTo.Pincode,
		"shipToName":     existing.ShipTo.Name,
		"shipToStreet":   existing.ShipTo.Street,
		"shipToCity":     existing.ShipTo.City,
		"shipToState":    existing.ShipTo.State,
		"shipToCountry":  existing.ShipTo.Country,
		"shipToPincode":  existing.ShipTo.Pincode,
	}
	if existing.ContactID != nil {
		input["contactId"] = *existing.ContactID
	}
	if existing.DealID != nil {
		input["dealId"] = *existing.DealID
	}

	quote := app.Quotes.Update(context.Background(), *id, input)
	if quote == nil {
		return fmt.Errorf("failed to update quote %d", *id)
	}

	fmt.Printf("✓ Quote updated: %s (ID: %d)\n", quote.Name, quote.ID)
	return nil
}

// ShowQuoteCommand prints one quote with its address blocks.
func ShowQuoteCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("show-quote", flag.ExitOnError)
	id := fs.Int("id", 0, "Quote ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	quote := app.Quotes.Get(context.Background(), *id)
	if quote == nil {
		return fmt.Errorf("quote %d not found", *id)
	}

	fmt.Printf("Quote %s (ID: %d)\n", quote.Name, quote.ID)
	fmt.Printf("  Company: %s\n", dash(quote.Company))
	fmt.Printf("  Status: %s  Delivery: %s\n", quote.Status, dash(quote.DeliveryMethod))
	fmt.Printf("  Dates: %s -> %s\n",
		dateutil.FormatSafely(quote.QuoteDate, "Jan 2, 2006", "-"),
		dateutil.FormatSafely(quote.ExpiresOn, "Jan 2, 2006", "-"))
	fmt.Printf("  Bill to: %s, %s, %s %s, %s %s\n",
		dash(quote.BillTo.Name), dash(quote.BillTo.Street), dash(quote.BillTo.City),
		quote.BillTo.State, quote.BillTo.Country, quote.BillTo.Pincode)
	fmt.Printf("  Ship to: %s, %s, %s %s, %s %s\n",
		dash(quote.ShipTo.Name), dash(quote.ShipTo.Street), dash(quote.ShipTo.City),
		quote.ShipTo.State, quote.ShipTo.Country, quote.ShipTo.Pincode)
	return nil
}

// DeleteQuoteCommand deletes a quote by id.
func DeleteQuoteCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("delete-quote", flag.ExitOnError)
	id := fs.Int("id", 0, "Quote ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	if !app.Quotes.Delete(context.Background(), *id) {
		return fmt.Errorf("failed to delete quote %d", *id)
	}
	fmt.Printf("✓ Quote %d deleted\n", *id)
	return nil
}
