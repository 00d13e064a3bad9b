// ABOUTME: MCP server subcommand
// ABOUTME: Exposes the CRM services as tools over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trellis-crm/trellis/handlers"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(app *App) error {
	log.Println("Starting Trellis MCP Server...")

	companyHandlers := handlers.NewCompanyHandlers(app.Companies)
	contactHandlers := handlers.NewContactHandlers(app.Contacts)
	dealHandlers := handlers.NewDealHandlers(app.Deals)
	quoteHandlers := handlers.NewQuoteHandlers(app.Quotes)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "trellis",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_company",
		Description: "Add a new company to the CRM",
	}, companyHandlers.AddCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_companies",
		Description: "Search for companies by name, city, state, or tags",
	}, companyHandlers.FindCompanies)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Add a new contact to the CRM",
	}, contactHandlers.AddContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contacts",
		Description: "Search for contacts by name, email, company, or tags",
	}, contactHandlers.FindContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_contact",
		Description: "Update an existing contact's information",
	}, contactHandlers.UpdateContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a contact from the CRM",
	}, contactHandlers.DeleteContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_deal",
		Description: "Create a new deal linked to a contact",
	}, dealHandlers.AddDeal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_deals",
		Description: "List deals, optionally filtered by pipeline stage",
	}, dealHandlers.ListDeals)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_deal",
		Description: "Update an existing deal's information",
	}, dealHandlers.UpdateDeal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_deal_stage",
		Description: "Move a deal to a different pipeline stage",
	}, dealHandlers.MoveDealStage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_deal",
		Description: "Delete a deal from the pipeline",
	}, dealHandlers.DeleteDeal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_quote",
		Description: "Create a quote with company, dates, and optional contact and deal links",
	}, quoteHandlers.CreateQuote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_quotes",
		Description: "List quotes, optionally filtered by status",
	}, quoteHandlers.ListQuotes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_quote_status",
		Description: "Change a quote's status",
	}, quoteHandlers.UpdateQuoteStatus)

	// Run server on stdio transport
	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
