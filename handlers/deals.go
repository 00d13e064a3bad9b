// ABOUTME: Deal MCP tool handlers
// ABOUTME: Implements add_deal, list_deals, move_deal_stage, and delete_deal tools
package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/services"
	"github.com/trellis-crm/trellis/validation"
)

type DealHandlers struct {
	deals *services.DealService
}

func NewDealHandlers(deals *services.DealService) *DealHandlers {
	return &DealHandlers{deals: deals}
}

type AddDealInput struct {
	Title             string  `json:"title" jsonschema:"Deal title (required)"`
	ContactID         int     `json:"contact_id" jsonschema:"Linked contact ID (required)"`
	Value             float64 `json:"value,omitempty" jsonschema:"Deal value in dollars"`
	Stage             string  `json:"stage,omitempty" jsonschema:"Pipeline stage (defaults to Lead)"`
	Probability       int     `json:"probability,omitempty" jsonschema:"Close probability 0-100"`
	ExpectedCloseDate string  `json:"expected_close_date,omitempty" jsonschema:"Expected close date (YYYY-MM-DD)"`
	Notes             string  `json:"notes,omitempty" jsonschema:"Notes"`
}

type DealOutput struct {
	ID                int     `json:"id"`
	Title             string  `json:"title"`
	ContactID         *int    `json:"contact_id,omitempty"`
	Value             float64 `json:"value"`
	Stage             string  `json:"stage"`
	Probability       int     `json:"probability"`
	WeightedValue     float64 `json:"weighted_value"`
	ExpectedCloseDate string  `json:"expected_close_date,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

func (h *DealHandlers) AddDeal(ctx context.Context, request *mcp.CallToolRequest, input AddDealInput) (*mcp.CallToolResult, DealOutput, error) {
	form := map[string]string{
		"title_c":       input.Title,
		"value_c":       strconv.FormatFloat(input.Value, 'f', -1, 64),
		"probability_c": strconv.Itoa(input.Probability),
	}
	if input.ContactID != 0 {
		form["contact_id_c"] = strconv.Itoa(input.ContactID)
	}
	if v := validation.ValidateDeal(form); !v.Empty() {
		return nil, DealOutput{}, violationError(v)
	}

	deal := h.deals.Create(ctx, map[string]any{
		"title":             input.Title,
		"contactId":         input.ContactID,
		"value":             input.Value,
		"stage":             input.Stage,
		"probability":       input.Probability,
		"expectedCloseDate": input.ExpectedCloseDate,
		"notes":             input.Notes,
	})
	if deal == nil {
		return nil, DealOutput{}, fmt.Errorf("failed to create deal")
	}

	return nil, dealToOutput(deal), nil
}

type ListDealsInput struct {
	Stage string `json:"stage,omitempty" jsonschema:"Filter by pipeline stage"`
}

type ListDealsOutput struct {
	Deals []DealOutput `json:"deals"`
}

func (h *DealHandlers) ListDeals(ctx context.Context, request *mcp.CallToolRequest, input ListDealsInput) (*mcp.CallToolResult, ListDealsOutput, error) {
	out := ListDealsOutput{Deals: []DealOutput{}}
	for _, deal := range h.deals.List(ctx) {
		if input.Stage != "" && deal.Stage != input.Stage {
			continue
		}
		out.Deals = append(out.Deals, dealToOutput(&deal))
	}
	return nil, out, nil
}

type UpdateDealInput struct {
	ID                int     `json:"id" jsonschema:"Deal ID (required)"`
	Title             string  `json:"title,omitempty" jsonschema:"Updated title"`
	Value             float64 `json:"value,omitempty" jsonschema:"Updated value in dollars"`
	Stage             string  `json:"stage,omitempty" jsonschema:"Updated pipeline stage"`
	Probability       int     `json:"probability,omitempty" jsonschema:"Updated close probability 0-100"`
	ExpectedCloseDate string  `json:"expected_close_date,omitempty" jsonschema:"Updated expected close date (YYYY-MM-DD)"`
	Notes             string  `json:"notes,omitempty" jsonschema:"Updated notes"`
}

func (h *DealHandlers) UpdateDeal(ctx context.Context, request *mcp.CallToolRequest, input UpdateDealInput) (*mcp.CallToolResult, DealOutput, error) {
	if input.ID == 0 {
		return nil, DealOutput{}, fmt.Errorf("id is required")
	}
	if input.Stage != "" && !validStage(input.Stage) {
		return nil, DealOutput{}, fmt.Errorf("invalid stage: %q", input.Stage)
	}
	if input.Probability < 0 || input.Probability > 100 {
		return nil, DealOutput{}, fmt.Errorf("probability must be between 0 and 100")
	}

	current := h.deals.Get(ctx, input.ID)
	if current == nil {
		return nil, DealOutput{}, fmt.Errorf("deal not found")
	}

	// Zero-valued inputs keep the current values
	fields := map[string]any{
		"title":             current.Title,
		"value":             current.Value,
		"stage":             current.Stage,
		"probability":       current.Probability,
		"expectedCloseDate": current.ExpectedCloseDate,
		"notes":             current.Notes,
		"createdAt":         current.CreatedAt,
	}
	if current.ContactID != nil {
		fields["contactId"] = *current.ContactID
	}
	if input.Title != "" {
		fields["title"] = input.Title
	}
	if input.Value != 0 {
		fields["value"] = input.Value
	}
	if input.Stage != "" {
		fields["stage"] = input.Stage
	}
	if input.Probability != 0 {
		fields["probability"] = input.Probability
	}
	if input.ExpectedCloseDate != "" {
		fields["expectedCloseDate"] = input.ExpectedCloseDate
	}
	if input.Notes != "" {
		fields["notes"] = input.Notes
	}

	deal := h.deals.Update(ctx, input.ID, fields)
	if deal == nil {
		return nil, DealOutput{}, fmt.Errorf("failed to update deal %d", input.ID)
	}

	return nil, dealToOutput(deal), nil
}

type MoveDealStageInput struct {
	ID    int    `json:"id" jsonschema:"Deal ID (required)"`
	Stage string `json:"stage" jsonschema:"Target stage: Lead, Qualified, Proposal, Negotiation, Closed Won, or Closed Lost"`
}

func (h *DealHandlers) MoveDealStage(ctx context.Context, request *mcp.CallToolRequest, input MoveDealStageInput) (*mcp.CallToolResult, DealOutput, error) {
	if input.ID == 0 {
		return nil, DealOutput{}, fmt.Errorf("id is required")
	}
	if !validStage(input.Stage) {
		return nil, DealOutput{}, fmt.Errorf("invalid stage: %q", input.Stage)
	}

	deal := h.deals.MoveStage(ctx, input.ID, input.Stage)
	if deal == nil {
		return nil, DealOutput{}, fmt.Errorf("failed to move deal %d", input.ID)
	}

	return nil, dealToOutput(deal), nil
}

type DeleteDealInput struct {
	ID int `json:"id" jsonschema:"Deal ID (required)"`
}

func (h *DealHandlers) DeleteDeal(ctx context.Context, request *mcp.CallToolRequest, input DeleteDealInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == 0 {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}

	if !h.deals.Delete(ctx, input.ID) {
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete deal %d", input.ID)
	}

	return nil, DeleteOutput{
		Success: true,
		Message: fmt.Sprintf("Deleted deal %d", input.ID),
	}, nil
}

func validStage(stage string) bool {
	for _, s := range models.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

func dealToOutput(d *models.Deal) DealOutput {
	return DealOutput{
		ID:                d.ID,
		Title:             d.Title,
		ContactID:         d.ContactID,
		Value:             d.Value,
		Stage:             d.Stage,
		Probability:       d.Probability,
		WeightedValue:     d.WeightedValue(),
		ExpectedCloseDate: d.ExpectedCloseDate,
		Notes:             d.Notes,
	}
}
