// ABOUTME: Tests for the quote service
// ABOUTME: Covers address blocks, optional references, and delete reduction
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/recordstore"
)

func TestQuoteCreateFullForm(t *testing.T) {
	store := recordstore.NewFakeStore()
	svc := NewQuoteService(store, zap.NewNop())

	quote := svc.Create(context.Background(), map[string]any{
		"Name":           "Q-2024-001",
		"company":        "Acme Corp",
		"contactId":      4,
		"quoteDate":      "2024-01-10",
		"expiresOn":      "2024-02-10",
		"deliveryMethod": "Email",
		"billToName":     "Acme HQ",
		"billToCity":     "Chicago",
		"shipToName":     "Acme Warehouse",
		"shipToCity":     "Peoria",
	})

	require.NotNil(t, quote)
	assert.Equal(t, models.QuoteDraft, quote.Status)
	assert.Equal(t, "Acme HQ", quote.BillTo.Name)
	assert.Equal(t, "Peoria", quote.ShipTo.City)
	require.NotNil(t, quote.ContactID)
	assert.Equal(t, 4, *quote.ContactID)
	assert.Nil(t, quote.DealID, "unlinked reference stays nil")
}

func TestQuoteDeleteReduction(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("quote_c", recordstore.Record{"Name": "Q-1"})
	svc := NewQuoteService(store, zap.NewNop())

	// One success among any failures is true; zero successes is false
	assert.True(t, svc.Delete(context.Background(), seeded["Id"].(int)))
	assert.False(t, svc.Delete(context.Background(), seeded["Id"].(int)))
}

func TestQuoteUpdatePreservesIdentity(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("quote_c", recordstore.Record{"Name": "Q-1", "company_c": "Acme"})
	svc := NewQuoteService(store, zap.NewNop())

	updated := svc.Update(context.Background(), seeded["Id"].(int), map[string]any{
		"Name":    "Q-1 rev2",
		"company": "Acme",
		"status":  models.QuoteSent,
	})
	require.NotNil(t, updated)
	assert.Equal(t, seeded["Id"].(int), updated.ID)
	assert.Equal(t, models.QuoteSent, updated.Status)
}

func TestQuotePartialFailureReturnsNil(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.RejectWrites = true
	svc := NewQuoteService(store, zap.NewNop())

	assert.Nil(t, svc.Create(context.Background(), map[string]any{"Name": "Q-1"}))
}

func TestActivityCreateStampsDate(t *testing.T) {
	store := recordstore.NewFakeStore()
	svc := NewActivityService(store, zap.NewNop())

	activity := svc.Create(context.Background(), map[string]any{
		"contactId":   5,
		"type":        models.ActivityCall,
		"description": "Intro call",
	})

	require.NotNil(t, activity)
	assert.NotEmpty(t, activity.Date)
	assert.Equal(t, "user1", activity.UserID, "user defaults when not supplied")
}
