// ABOUTME: Company MCP tool handlers
// ABOUTME: Implements add_company and find_companies tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/services"
	"github.com/trellis-crm/trellis/validation"
)

type CompanyHandlers struct {
	companies *services.CompanyService
}

func NewCompanyHandlers(companies *services.CompanyService) *CompanyHandlers {
	return &CompanyHandlers{companies: companies}
}

type AddCompanyInput struct {
	Name          string `json:"name" jsonschema:"Company name (required)"`
	Address       string `json:"address,omitempty" jsonschema:"Street address"`
	City          string `json:"city" jsonschema:"City (required)"`
	State         string `json:"state" jsonschema:"State (required)"`
	Zip           string `json:"zip,omitempty" jsonschema:"ZIP code"`
	Website       string `json:"website,omitempty" jsonschema:"Website URL"`
	Phone         string `json:"phone,omitempty" jsonschema:"Phone number"`
	EmployeeCount string `json:"employee_count,omitempty" jsonschema:"Employee count"`
	AnnualRevenue string `json:"annual_revenue,omitempty" jsonschema:"Annual revenue"`
	Tags          string `json:"tags,omitempty" jsonschema:"Comma-separated tags"`
}

type CompanyOutput struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Website string `json:"website,omitempty"`
	Tags    string `json:"tags,omitempty"`
}

func (h *CompanyHandlers) AddCompany(ctx context.Context, request *mcp.CallToolRequest, input AddCompanyInput) (*mcp.CallToolResult, CompanyOutput, error) {
	v := validation.ValidateCompany(map[string]string{
		"name_c":           input.Name,
		"city_c":           input.City,
		"state_c":          input.State,
		"employee_count_c": input.EmployeeCount,
		"annual_revenue_c": input.AnnualRevenue,
		"website_c":        input.Website,
	})
	if !v.Empty() {
		return nil, CompanyOutput{}, violationError(v)
	}

	fields := map[string]any{
		"name":    input.Name,
		"address": input.Address,
		"city":    input.City,
		"state":   input.State,
		"zip":     input.Zip,
		"website": input.Website,
		"phone":   input.Phone,
		"tags":    input.Tags,
	}
	if input.EmployeeCount != "" {
		fields["employeeCount"] = input.EmployeeCount
	}
	if input.AnnualRevenue != "" {
		fields["annualRevenue"] = input.AnnualRevenue
	}

	company := h.companies.Create(ctx, fields)
	if company == nil {
		return nil, CompanyOutput{}, fmt.Errorf("failed to create company")
	}

	return nil, companyToOutput(company), nil
}

type FindCompaniesInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (matches name, city, state, tags)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindCompaniesOutput struct {
	Companies []CompanyOutput `json:"companies"`
}

func (h *CompanyHandlers) FindCompanies(ctx context.Context, request *mcp.CallToolRequest, input FindCompaniesInput) (*mcp.CallToolResult, FindCompaniesOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	out := FindCompaniesOutput{Companies: []CompanyOutput{}}
	for _, company := range h.companies.List(ctx) {
		if !companyMatches(company, input.Query) {
			continue
		}
		out.Companies = append(out.Companies, companyToOutput(&company))
		if len(out.Companies) >= limit {
			break
		}
	}
	return nil, out, nil
}

func companyMatches(c models.Company, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{c.Name, c.City, c.State, c.Tags} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func companyToOutput(c *models.Company) CompanyOutput {
	return CompanyOutput{
		ID:      c.ID,
		Name:    c.Name,
		City:    c.City,
		State:   c.State,
		Website: c.Website,
		Tags:    c.Tags,
	}
}
