// ABOUTME: Quote MCP tool handlers
// ABOUTME: Implements create_quote, list_quotes, and update_quote_status tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/services"
	"github.com/trellis-crm/trellis/validation"
)

type QuoteHandlers struct {
	quotes *services.QuoteService
}

func NewQuoteHandlers(quotes *services.QuoteService) *QuoteHandlers {
	return &QuoteHandlers{quotes: quotes}
}

type CreateQuoteInput struct {
	Name           string `json:"name" jsonschema:"Quote name (required)"`
	Company        string `json:"company" jsonschema:"Company name (required)"`
	ContactID      int    `json:"contact_id,omitempty" jsonschema:"Linked contact ID"`
	DealID         int    `json:"deal_id,omitempty" jsonschema:"Linked deal ID"`
	QuoteDate      string `json:"quote_date" jsonschema:"Quote date (YYYY-MM-DD, required)"`
	ExpiresOn      string `json:"expires_on" jsonschema:"Expiry date (YYYY-MM-DD, required, after quote date)"`
	Status         string `json:"status,omitempty" jsonschema:"Status: Draft, Sent, Accepted, or Rejected (defaults to Draft)"`
	DeliveryMethod string `json:"delivery_method,omitempty" jsonschema:"Delivery method"`
}

type QuoteOutput struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	ContactID *int   `json:"contact_id,omitempty"`
	DealID    *int   `json:"deal_id,omitempty"`
	QuoteDate string `json:"quote_date,omitempty"`
	ExpiresOn string `json:"expires_on,omitempty"`
	Status    string `json:"status"`
}

func (h *QuoteHandlers) CreateQuote(ctx context.Context, request *mcp.CallToolRequest, input CreateQuoteInput) (*mcp.CallToolResult, QuoteOutput, error) {
	v := validation.ValidateQuote(map[string]string{
		"Name":         input.Name,
		"company_c":    input.Company,
		"quote_date_c": input.QuoteDate,
		"expires_on_c": input.ExpiresOn,
	})
	if !v.Empty() {
		return nil, QuoteOutput{}, violationError(v)
	}

	quote := h.quotes.Create(ctx, map[string]any{
		"name":           input.Name,
		"company":        input.Company,
		"contactId":      input.ContactID,
		"dealId":         input.DealID,
		"quoteDate":      input.QuoteDate,
		"expiresOn":      input.ExpiresOn,
		"status":         input.Status,
		"deliveryMethod": input.DeliveryMethod,
	})
	if quote == nil {
		return nil, QuoteOutput{}, fmt.Errorf("failed to create quote")
	}

	return nil, quoteToOutput(quote), nil
}

type ListQuotesInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status"`
}

type ListQuotesOutput struct {
	Quotes []QuoteOutput `json:"quotes"`
}

func (h *QuoteHandlers) ListQuotes(ctx context.Context, request *mcp.CallToolRequest, input ListQuotesInput) (*mcp.CallToolResult, ListQuotesOutput, error) {
	out := ListQuotesOutput{Quotes: []QuoteOutput{}}
	for _, quote := range h.quotes.List(ctx) {
		if input.Status != "" && quote.Status != input.Status {
			continue
		}
		out.Quotes = append(out.Quotes, quoteToOutput(&quote))
	}
	return nil, out, nil
}

type UpdateQuoteStatusInput struct {
	ID     int    `json:"id" jsonschema:"Quote ID (required)"`
	Status string `json:"status" jsonschema:"New status: Draft, Sent, Accepted, or Rejected"`
}

func (h *QuoteHandlers) UpdateQuoteStatus(ctx context.Context, request *mcp.CallToolRequest, input UpdateQuoteStatusInput) (*mcp.CallToolResult, QuoteOutput, error) {
	if input.ID == 0 {
		return nil, QuoteOutput{}, fmt.Errorf("id is required")
	}
	if !validQuoteStatus(input.Status) {
		return nil, QuoteOutput{}, fmt.Errorf("invalid status: %q", input.Status)
	}

	current := h.quotes.Get(ctx, input.ID)
	if current == nil {
		return nil, QuoteOutput{}, fmt.Errorf("quote not found")
	}

	fields := map[string]any{
		"Name":           current.Name,
		"company":        current.Company,
		"quoteDate":      current.QuoteDate,
		"expiresOn":      current.ExpiresOn,
		"status":         input.Status,
		"deliveryMethod": current.DeliveryMethod,
	}
	if current.ContactID != nil {
		fields["contactId"] = *current.ContactID
	}
	if current.DealID != nil {
		fields["dealId"] = *current.DealID
	}

	quote := h.quotes.Update(ctx, input.ID, fields)
	if quote == nil {
		return nil, QuoteOutput{}, fmt.Errorf("failed to update quote %d", input.ID)
	}

	return nil, quoteToOutput(quote), nil
}

func validQuoteStatus(status string) bool {
	switch status {
	case models.QuoteDraft, models.QuoteSent, models.QuoteAccepted, models.QuoteRejected:
		return true
	}
	return false
}

func quoteToOutput(q *models.Quote) QuoteOutput {
	return QuoteOutput{
		ID:        q.ID,
		Name:      q.Name,
		Company:   q.Company,
		ContactID: q.ContactID,
		DealID:    q.DealID,
		QuoteDate: q.QuoteDate,
		ExpiresOn: q.ExpiresOn,
		Status:    q.Status,
	}
}
