// ABOUTME: Entry point for the Trellis CRM client
// ABOUTME: Routes to MCP server, CLI commands, or the TUI based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/cli"
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/tui"
)

const version = "0.1.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("trellis version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	// .env is optional; real deployments set the variables directly
	_ = godotenv.Load()

	logger, err := buildLogger(*verbose)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	app, err := buildApp(logger)
	if err != nil {
		log.Fatalf("Failed to connect to record store: %v", err)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		if err := cli.MCPCommand(app); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "tui":
		model := tui.NewModel(tui.Services{
			Companies: app.Companies,
			Contacts:  app.Contacts,
			Deals:     app.Deals,
			Quotes:    app.Quotes,
		})
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		runCRM(app, commandArgs[0], commandArgs[1:])

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCRM(app *cli.App, command string, args []string) {
	commands := map[string]func(*cli.App, []string) error{
		// Company commands
		"add-company":    cli.AddCompanyCommand,
		"list-companies": cli.ListCompaniesCommand,
		"update-company": cli.UpdateCompanyCommand,
		"delete-company": cli.DeleteCompanyCommand,

		// Contact commands
		"add-contact":    cli.AddContactCommand,
		"list-contacts":  cli.ListContactsCommand,
		"update-contact": cli.UpdateContactCommand,
		"delete-contact": cli.DeleteContactCommand,

		// Deal commands
		"add-deal":    cli.AddDealCommand,
		"list-deals":  cli.ListDealsCommand,
		"update-deal": cli.UpdateDealCommand,
		"move-deal":   cli.MoveDealCommand,
		"delete-deal": cli.DeleteDealCommand,

		// Quote commands
		"add-quote":    cli.AddQuoteCommand,
		"list-quotes":  cli.ListQuotesCommand,
		"update-quote": cli.UpdateQuoteCommand,
		"show-quote":   cli.ShowQuoteCommand,
		"delete-quote": cli.DeleteQuoteCommand,

		// Activity commands
		"log-activity":    cli.LogActivityCommand,
		"list-activities": cli.ListActivitiesCommand,

		// Reporting
		"dashboard": cli.DashboardCommand,
		"overview":  cli.OverviewCommand,
	}

	run, ok := commands[command]
	if !ok {
		fmt.Printf("Unknown crm command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err := run(app, args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	// Keep command output clean; warnings still surface
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func buildApp(logger *zap.Logger) (*cli.App, error) {
	cfg, err := recordstore.LoadConfig()
	if err != nil {
		return nil, err
	}
	client, err := recordstore.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return cli.NewApp(client, logger), nil
}

func printUsage() {
	fmt.Printf(`trellis v%s - CRM client for the Trellis record store

USAGE:
  trellis [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --verbose              Enable debug logging

ENVIRONMENT:
  TRELLIS_HOST           Record store host (default: %s)
  TRELLIS_PROJECT_ID     Project identifier (required)
  TRELLIS_PUBLIC_KEY     Public API key (required)

COMMANDS:
  mcp                    Start MCP server for Claude Desktop
  tui                    Launch the interactive terminal UI
  crm                    CRM management commands

CRM COMMANDS:
  trellis crm add-company      Add a company
    --name <name>                Company name (required)
    --city <city>                City (required)
    --state <state>              State (required)
    --website <url>              Website URL
    --employees <n>              Employee count
    --revenue <amount>           Annual revenue

  trellis crm list-companies   List companies
  trellis crm update-company --id <id> [flags]
  trellis crm delete-company --id <id>

  trellis crm add-contact      Add a contact
    --first-name <name>          First name (required)
    --last-name <name>           Last name (required)
    --email <email>              Email address
    --company <company>          Company name
    --status <status>            Lead, Prospect, Customer, or Churned

  trellis crm list-contacts    List contacts
  trellis crm update-contact --id <id> [flags]
  trellis crm delete-contact --id <id>

  trellis crm add-deal         Add a deal
    --title <title>              Deal title (required)
    --contact <id>               Linked contact ID (required)
    --value <amount>             Deal value in dollars
    --stage <stage>              Pipeline stage (default: Lead)
    --probability <0-100>        Close probability

  trellis crm list-deals       List deals
    --stage <stage>              Filter by stage
  trellis crm update-deal --id <id> [flags]
  trellis crm move-deal --id <id> --stage <stage>
  trellis crm delete-deal --id <id>

  trellis crm add-quote        Create a quote
    --name <name>                Quote name (required)
    --company <company>          Company name (required)
    --quote-date <YYYY-MM-DD>    Quote date (required)
    --expires-on <YYYY-MM-DD>    Expiry date (required)
    --ship-same-as-bill          Copy billing block to shipping

  trellis crm list-quotes      List quotes
  trellis crm update-quote --id <id> [flags]
  trellis crm show-quote --id <id>
  trellis crm delete-quote --id <id>

  trellis crm log-activity     Log an interaction
    --contact <id>               Contact ID (required)
    --type <type>                call, email, meeting, or note (required)
    --description <text>         What happened (required)

  trellis crm list-activities  List logged activities
  trellis crm dashboard        Pipeline dashboard
  trellis crm overview         Quotes with linked contacts and deals

EXAMPLES:
  # Start MCP server for Claude Desktop
  trellis mcp

  # Add a contact
  trellis crm add-contact --first-name "Jane" --last-name "Doe" --email "jane@acme.com"

  # Move a deal along the pipeline
  trellis crm move-deal --id 12 --stage "Negotiation"

  # Browse everything interactively
  trellis tui

`, version, recordstore.DefaultHost)
}
