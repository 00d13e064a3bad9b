// ABOUTME: Company CLI commands
// ABOUTME: Human-friendly commands for managing companies
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/trellis-crm/trellis/validation"
)

// AddCompanyCommand validates and creates a new company.
func AddCompanyCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name (required)")
	address := fs.String("address", "", "Street address")
	city := fs.String("city", "", "City (required)")
	state := fs.String("state", "", "State (required)")
	zip := fs.String("zip", "", "ZIP code")
	website := fs.String("website", "", "Website URL")
	phone := fs.String("phone", "", "Phone number")
	employees := fs.String("employees", "", "Employee count")
	revenue := fs.String("revenue", "", "Annual revenue")
	tags := fs.String("tags", "", "Comma-separated tags")
	fs.Parse(args)

	v := validation.ValidateCompany(map[string]string{
		"name_c":           *name,
		"city_c":           *city,
		"state_c":          *state,
		"employee_count_c": *employees,
		"annual_revenue_c": *revenue,
		"website_c":        *website,
	})
	if !v.Empty() {
		return printViolations(v)
	}

	input := map[string]any{
		"name":    *name,
		"address": *address,
		"city":    *city,
		"state":   *state,
		"zip":     *zip,
		"website": *website,
		"phone":   *phone,
		"tags":    *tags,
	}
	if *employees != "" {
		input["employeeCount"] = *employees
	}
	if *revenue != "" {
		input["annualRevenue"] = *revenue
	}

	company := app.Companies.Create(context.Background(), input)
	if company == nil {
		return fmt.Errorf("failed to create company")
	}

	fmt.Printf("✓ Company created: %s (ID: %d)\n", company.Name, company.ID)
	if company.City != "" {
		fmt.Printf("  Location: %s, %s\n", company.City, company.State)
	}
	return nil
}

// ListCompaniesCommand lists all companies.
func ListCompaniesCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list-companies", flag.ExitOnError)
	fs.Parse(args)

	companies := app.Companies.List(context.Background())
	if len(companies) == 0 {
		fmt.Println("No companies found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tSTATE\tWEBSITE")
	fmt.Fprintln(w, "--\t----\t----\t-----\t-------")
	for _, c := range companies {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, dash(c.City), dash(c.State), dash(c.Website))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d company(ies)\n", len(companies))
	return nil
}

// UpdateCompanyCommand validates and updates an existing company.
func UpdateCompanyCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update-company", flag.ExitOnError)
	id := fs.Int("id", 0, "Company ID (required)")
	name := fs.String("name", "", "Company name")
	address := fs.String("address", "", "Street address")
	city := fs.String("city", "", "City")
	state := fs.String("state", "", "State")
	zip := fs.String("zip", "", "ZIP code")
	website := fs.String("website", "", "Website URL")
	phone := fs.String("phone", "", "Phone number")
	employees := fs.String("employees", "", "Employee count")
	revenue := fs.String("revenue", "", "Annual revenue")
	tags := fs.String("tags", "", "Comma-separated tags")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	existing := app.Companies.Get(context.Background(), *id)
	if existing == nil {
		return fmt.Errorf("company %d not found", *id)
	}

	// Unset flags keep the current value
	merge := func(flagValue, current string) string {
		if flagValue != "" {
			return flagValue
		}
		return current
	}
	merged := map[string]string{
		"name_c":           merge(*name, existing.Name),
		"city_c":           merge(*city, existing.City),
		"state_c":          merge(*state, existing.State),
		"employee_count_c": *employees,
		"annual_revenue_c": *revenue,
		"website_c":        merge(*website, existing.Website),
	}
	if v := validation.ValidateCompany(merged); !v.Empty() {
		return printViolations(v)
	}

	input := map[string]any{
		"name":    merged["name_c"],
		"address": merge(*address, existing.Address),
		"city":    merged["city_c"],
		"state":   merged["state_c"],
		"zip":     merge(*zip, existing.Zip),
		"website": merged["website_c"],
		"phone":   merge(*phone, existing.Phone),
		"tags":    merge(*tags, existing.Tags),
	}
	if *employees != "" {
		input["employeeCount"] = *employees
	} else if existing.EmployeeCount != 0 {
		input["employeeCount"] = existing.EmployeeCount
	}
	if *revenue != "" {
		input["annualRevenue"] = *revenue
	} else if existing.AnnualRevenue != 0 {
		input["annualRevenue"] = existing.AnnualRevenue
	}

	company := app.Companies.Update(context.Background(), *id, input)
	if company == nil {
		return fmt.Errorf("failed to update company %d", *id)
	}

	fmt.Printf("✓ Company updated: %s (ID: %d)\n", company.Name, company.ID)
	return nil
}

// DeleteCompanyCommand deletes a company by id.
func DeleteCompanyCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("delete-company", flag.ExitOnError)
	id := fs.Int("id", 0, "Company ID (required)")
	fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	if !app.Companies.Delete(context.Background(), *id) {
		return fmt.Errorf("failed to delete company %d", *id)
	}
	fmt.Printf("✓ Company %d deleted\n", *id)
	return nil
}
