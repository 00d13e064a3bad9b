// ABOUTME: Contact MCP tool handlers
// ABOUTME: Implements add_contact, find_contacts, update_contact, and delete_contact tools
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

type ContactHandlers struct {
	contacts *services.ContactService
}

func NewContactHandlers(contacts *services.ContactService) *ContactHandlers {
	return &ContactHandlers{contacts: contacts}
}

type AddContactInput struct {
	FirstName string `json:"first_name" jsonschema:"First name (required)"`
	LastName  string `json:"last_name" jsonschema:"Last name (required)"`
	Email     string `json:"email,omitempty" jsonschema:"Email address"`
	Phone     string `json:"phone,omitempty" jsonschema:"Phone number"`
	Company   string `json:"company,omitempty" jsonschema:"Company name"`
	Status    string `json:"status,omitempty" jsonschema:"Status: Lead, Prospect, Customer, or Churned (defaults to Lead)"`
	Tags      string `json:"tags,omitempty" jsonschema:"Comma-separated tags"`
}

type ContactOutput struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Status    string `json:"status"`
	Tags      string `json:"tags,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (h *ContactHandlers) AddContact(ctx context.Context, request *mcp.CallToolRequest, input AddContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	v := validation.ValidateContact(map[string]string{
		"first_name_c": input.FirstName,
		"last_name_c":  input.LastName,
	})
	if !v.Empty() {
		return nil, ContactOutput{}, violationError(v)
	}

	contact := h.contacts.Create(ctx, map[string]any{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
		"phone":     input.Phone,
		"company":   input.Company,
		"status":    input.Status,
		"tags":      input.Tags,
	})
	if contact == nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to create contact")
	}

	return nil, contactToOutput(contact), nil
}

type FindContactsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (matches name, email, company, tags)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
}

func (h *ContactHandlers) FindContacts(ctx context.Context, request *mcp.CallToolRequest, input FindContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	out := FindContactsOutput{Contacts: []ContactOutput{}}
	for _, contact := range h.contacts.List(ctx) {
		if !contactMatches(contact, input.Query) {
			continue
		}
		out.Contacts = append(out.Contacts, contactToOutput(&contact))
		if len(out.Contacts) >= limit {
			break
		}
	}
	return nil, out, nil
}

type UpdateContactInput struct {
	ID      int    `json:"id" jsonschema:"Contact ID (required)"`
	Email   string `json:"email,omitempty" jsonschema:"Updated email address"`
	Phone   string `json:"phone,omitempty" jsonschema:"Updated phone number"`
	Company string `json:"company,omitempty" jsonschema:"Updated company name"`
	Status  string `json:"status,omitempty" jsonschema:"Updated status"`
	Tags    string `json:"tags,omitempty" jsonschema:"Updated tags"`
}

func (h *ContactHandlers) UpdateContact(ctx context.Context, request *mcp.CallToolRequest, input UpdateContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	if input.ID == 0 {
		return nil, ContactOutput{}, fmt.Errorf("id is required")
	}

	current := h.contacts.Get(ctx, input.ID)
	if current == nil {
		return nil, ContactOutput{}, fmt.Errorf("contact not found")
	}

	// Unset inputs keep the current values
	fields := map[string]any{
		"firstName": current.FirstName,
		"lastName":  current.LastName,
		"email":     current.Email,
		"phone":     current.Phone,
		"company":   current.Company,
		"status":    current.Status,
		"tags":      current.Tags,
		"createdAt": current.CreatedAt,
	}
	if input.Email != "" {
		fields["email"] = input.Email
	}
	if input.Phone != "" {
		fields["phone"] = input.Phone
	}
	if input.Company != "" {
		fields["company"] = input.Company
	}
	if input.Status != "" {
		fields["status"] = input.Status
	}
	if input.Tags != "" {
		fields["tags"] = input.Tags
	}

	contact := h.contacts.Update(ctx, input.ID, fields)
	if contact == nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to update contact")
	}

	return nil, contactToOutput(contact), nil
}

type DeleteContactInput struct {
	ID int `json:"id" jsonschema:"Contact ID (required)"`
}

type DeleteOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *ContactHandlers) DeleteContact(ctx context.Context, request *mcp.CallToolRequest, input DeleteContactInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == 0 {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}

	if !h.contacts.Delete(ctx, input.ID) {
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete contact %d", input.ID)
	}

	return nil, DeleteOutput{
		Success: true,
		Message: fmt.Sprintf("Deleted contact %d", input.ID),
	}, nil
}

func contactMatches(c models.Contact, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{c.FullName(), c.Email, c.Company, c.Tags} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func contactToOutput(c *models.Contact) ContactOutput {
	return ContactOutput{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Status:    c.Status,
		Tags:      c.Tags,
		CreatedAt: c.CreatedAt,
	}
}
