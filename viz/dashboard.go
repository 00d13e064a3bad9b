// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides ASCII pipeline overview computed from store reads
package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trellis-crm/trellis/dateutil"
	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/services"
)

type DashboardStats struct {
	PipelineByStage map[string]PipelineStageStats

	TotalContacts  int
	TotalCompanies int
	TotalDeals     int
	TotalQuotes    int

	QuotesByStatus map[string]int

	// Recent activity (last 7 days)
	RecentActivities []models.Activity

	// Quotes past their expiry date and still open
	ExpiredQuotes []models.Quote
}

type PipelineStageStats struct {
	Stage    string
	Count    int
	Value    float64
	Weighted float64
}

// Loader is the slice of the service layer the dashboard reads from.
type Loader struct {
	Companies  *services.CompanyService
	Contacts   *services.ContactService
	Deals      *services.DealService
	Quotes     *services.QuoteService
	Activities *services.ActivityService
}

// GenerateDashboardStats aggregates the current store contents. The
// services already degrade failures to empty slices, so a store outage
// renders as an empty dashboard rather than an error.
func GenerateDashboardStats(ctx context.Context, loader Loader) *DashboardStats {
	stats := &DashboardStats{
		PipelineByStage: make(map[string]PipelineStageStats),
		QuotesByStatus:  make(map[string]int),
	}

	deals := loader.Deals.List(ctx)
	for _, deal := range deals {
		stage := deal.Stage
		if stage == "" {
			stage = "unknown"
		}

		pstats := stats.PipelineByStage[stage]
		pstats.Stage = stage
		pstats.Count++
		pstats.Value += deal.Value
		pstats.Weighted += deal.WeightedValue()
		stats.PipelineByStage[stage] = pstats
	}
	stats.TotalDeals = len(deals)

	stats.TotalContacts = len(loader.Contacts.List(ctx))
	stats.TotalCompanies = len(loader.Companies.List(ctx))

	now := time.Now()
	quotes := loader.Quotes.List(ctx)
	stats.TotalQuotes = len(quotes)
	for _, quote := range quotes {
		status := quote.Status
		if status == "" {
			status = models.QuoteDraft
		}
		stats.QuotesByStatus[status]++

		expires := dateutil.DateSafely(quote.ExpiresOn)
		open := status == models.QuoteDraft || status == models.QuoteSent
		if open && !expires.Equal(dateutil.Epoch) && expires.Before(now) {
			stats.ExpiredQuotes = append(stats.ExpiredQuotes, quote)
		}
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, activity := range loader.Activities.List(ctx) {
		if dateutil.DateSafely(activity.Date).After(weekAgo) {
			stats.RecentActivities = append(stats.RecentActivities, activity)
		}
	}

	return stats
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  TRELLIS CRM DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("PIPELINE OVERVIEW\n")
	renderPipeline(&out, stats.PipelineByStage)
	out.WriteString("\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  📇 %d contacts  🏢 %d companies  💼 %d deals  📄 %d quotes\n\n",
		stats.TotalContacts, stats.TotalCompanies, stats.TotalDeals, stats.TotalQuotes))

	if stats.TotalQuotes > 0 {
		out.WriteString("QUOTES\n")
		for _, status := range []string{models.QuoteDraft, models.QuoteSent, models.QuoteAccepted, models.QuoteRejected} {
			if count := stats.QuotesByStatus[status]; count > 0 {
				out.WriteString(fmt.Sprintf("  %-9s %d\n", status, count))
			}
		}
		out.WriteString("\n")
	}

	if len(stats.RecentActivities) > 0 {
		out.WriteString(fmt.Sprintf("ACTIVITY\n  🗓  %d activities in the last 7 days\n\n",
			len(stats.RecentActivities)))
	}

	if len(stats.ExpiredQuotes) > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		out.WriteString(fmt.Sprintf("  ⚠️  %d open quote(s) past expiry\n", len(stats.ExpiredQuotes)))
	}

	return out.String()
}

func renderPipeline(out *strings.Builder, pipeline map[string]PipelineStageStats) {
	maxCount := 0
	for _, pstats := range pipeline {
		if pstats.Count > maxCount {
			maxCount = pstats.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, stage := range models.Stages {
		pstats, exists := pipeline[stage]
		if !exists {
			continue
		}

		barLength := (pstats.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-12s %s  %2d ($%.0fK weighted $%.0fK)\n",
			stage, bar, pstats.Count, pstats.Value/1000, pstats.Weighted/1000))
	}
}
