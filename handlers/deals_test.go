// ABOUTME: Tests for deal MCP tool handlers
// ABOUTME: Exercises stage validation, filters, and error translation
package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/services"
)

func newDealHandlers(store *recordstore.FakeStore) *DealHandlers {
	return NewDealHandlers(services.NewDealService(store, zap.NewNop()))
}

func TestAddDeal(t *testing.T) {
	store := recordstore.NewFakeStore()
	h := newDealHandlers(store)

	_, out, err := h.AddDeal(context.Background(), nil, AddDealInput{
		Title:       "Big deal",
		ContactID:   7,
		Value:       10000,
		Probability: 60,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	require.NotNil(t, out.ContactID)
	assert.Equal(t, 7, *out.ContactID)
	assert.Equal(t, models.StageLead, out.Stage, "stage should default")
	assert.Equal(t, 6000.0, out.WeightedValue)
}

func TestAddDealRequiresContact(t *testing.T) {
	h := newDealHandlers(recordstore.NewFakeStore())

	_, _, err := h.AddDeal(context.Background(), nil, AddDealInput{Title: "No contact"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact_id_c")
}

func TestAddDealRejectsOutOfRangeProbability(t *testing.T) {
	h := newDealHandlers(recordstore.NewFakeStore())

	_, _, err := h.AddDeal(context.Background(), nil, AddDealInput{
		Title:       "Too sure",
		ContactID:   1,
		Probability: 150,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probability_c")
}

func TestListDealsStageFilter(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.Seed("deal_c", recordstore.Record{"title_c": "A", "stage_c": models.StageLead})
	store.Seed("deal_c", recordstore.Record{"title_c": "B", "stage_c": models.StageProposal})
	h := newDealHandlers(store)

	_, out, err := h.ListDeals(context.Background(), nil, ListDealsInput{Stage: models.StageProposal})
	require.NoError(t, err)
	require.Len(t, out.Deals, 1)
	assert.Equal(t, "B", out.Deals[0].Title)
}

func TestUpdateDealKeepsUnsetFields(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("deal_c", recordstore.Record{
		"title_c": "A", "stage_c": models.StageLead,
		"value_c": 1000.0, "probability_c": 40, "contact_id_c": 3,
	})
	h := newDealHandlers(store)

	_, out, err := h.UpdateDeal(context.Background(), nil, UpdateDealInput{
		ID:    seeded["Id"].(int),
		Value: 2500,
	})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, out.Value)
	assert.Equal(t, "A", out.Title)
	assert.Equal(t, 40, out.Probability)
	require.NotNil(t, out.ContactID)
	assert.Equal(t, 3, *out.ContactID)
}

func TestMoveDealStage(t *testing.T) {
	store := recordstore.NewFakeStore()
	seeded := store.Seed("deal_c", recordstore.Record{
		"title_c": "A", "stage_c": models.StageLead, "value_c": 1000.0,
	})
	h := newDealHandlers(store)

	_, out, err := h.MoveDealStage(context.Background(), nil, MoveDealStageInput{
		ID:    seeded["Id"].(int),
		Stage: models.StageQualified,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StageQualified, out.Stage)
	assert.Equal(t, "A", out.Title, "move keeps the other fields")
}

func TestMoveDealStageInvalidStage(t *testing.T) {
	h := newDealHandlers(recordstore.NewFakeStore())

	_, _, err := h.MoveDealStage(context.Background(), nil, MoveDealStageInput{ID: 1, Stage: "Limbo"})
	assert.Error(t, err)
}

func TestDeleteDealMissing(t *testing.T) {
	h := newDealHandlers(recordstore.NewFakeStore())

	_, _, err := h.DeleteDeal(context.Background(), nil, DeleteDealInput{ID: 42})
	assert.Error(t, err)
}
