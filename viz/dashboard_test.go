// ABOUTME: Tests for dashboard aggregation and rendering
// ABOUTME: Uses the in-memory fake store via real services
package viz

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/recordstore"
	"github.com/trellis-crm/trellis/services"
)

func testLoader(store *recordstore.FakeStore) Loader {
	log := zap.NewNop()
	return Loader{
		Companies:  services.NewCompanyService(store, log),
		Contacts:   services.NewContactService(store, log),
		Deals:      services.NewDealService(store, log),
		Quotes:     services.NewQuoteService(store, log),
		Activities: services.NewActivityService(store, log),
	}
}

func TestGenerateDashboardStats(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.Seed("company_c", recordstore.Record{"name_c": "Acme"})
	store.Seed("contact_c", recordstore.Record{"first_name_c": "Jane", "last_name_c": "Doe"})
	store.Seed("deal_c", recordstore.Record{
		"title_c": "D1", "stage_c": models.StageProposal, "value_c": 10000.0, "probability_c": 50,
	})
	store.Seed("deal_c", recordstore.Record{
		"title_c": "D2", "stage_c": models.StageProposal, "value_c": 5000.0, "probability_c": 20,
	})
	store.Seed("quote_c", recordstore.Record{
		"Name": "Q1", "status_c": models.QuoteSent, "expires_on_c": "2020-01-01",
	})

	stats := GenerateDashboardStats(context.Background(), testLoader(store))

	if stats.TotalCompanies != 1 || stats.TotalContacts != 1 || stats.TotalDeals != 2 {
		t.Errorf("totals wrong: %+v", stats)
	}

	proposal := stats.PipelineByStage[models.StageProposal]
	if proposal.Count != 2 || proposal.Value != 15000 {
		t.Errorf("proposal stage stats wrong: %+v", proposal)
	}
	if proposal.Weighted != 6000 {
		t.Errorf("weighted = %f, want 6000", proposal.Weighted)
	}

	if len(stats.ExpiredQuotes) != 1 {
		t.Errorf("expected one expired open quote, got %d", len(stats.ExpiredQuotes))
	}
}

func TestGenerateDashboardStatsRecentActivity(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.Seed("activity_c", recordstore.Record{
		"contact_id_c": 1, "type_c": "call", "description_c": "new",
		"date_c": time.Now().AddDate(0, 0, -2).Format(time.RFC3339),
	})
	store.Seed("activity_c", recordstore.Record{
		"contact_id_c": 1, "type_c": "call", "description_c": "old",
		"date_c": "2020-01-01",
	})

	stats := GenerateDashboardStats(context.Background(), testLoader(store))
	if len(stats.RecentActivities) != 1 {
		t.Errorf("expected 1 recent activity, got %d", len(stats.RecentActivities))
	}
}

func TestRenderDashboard(t *testing.T) {
	store := recordstore.NewFakeStore()
	store.Seed("deal_c", recordstore.Record{
		"title_c": "D1", "stage_c": models.StageLead, "value_c": 2000.0,
	})

	stats := GenerateDashboardStats(context.Background(), testLoader(store))
	out := RenderDashboard(stats)

	if !strings.Contains(out, "TRELLIS CRM DASHBOARD") {
		t.Error("missing header")
	}
	if !strings.Contains(out, models.StageLead) {
		t.Error("missing pipeline stage line")
	}
}

func TestDashboardEmptyStoreRenders(t *testing.T) {
	stats := GenerateDashboardStats(context.Background(), testLoader(recordstore.NewFakeStore()))
	out := RenderDashboard(stats)
	if !strings.Contains(out, "0 contacts") {
		t.Error("empty dashboard should render zero stats")
	}
}
