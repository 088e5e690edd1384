package service

import (
	"context"

	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/clinicbook/receipts-api/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MaxMonthlyBuckets caps the monthly breakdown shown on the dashboard
const MaxMonthlyBuckets = 6

// DashboardService aggregates receipt records for the dashboard view
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	cacheStore    *cache.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, cacheStore *cache.Store) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		cacheStore:    cacheStore,
	}
}

// DashboardStats represents the dashboard summary
type DashboardStats struct {
	TotalIncome    float64          `json:"total_income"`
	ReceiptCount   int64            `json:"receipt_count"`
	AverageReceipt float64          `json:"average_receipt"`
	Branches       []BranchSummary  `json:"branches"`
	Months         []MonthlySummary `json:"months"`
}

// BranchSummary is the per-branch rollup, grouped by exact branch string
type BranchSummary struct {
	Branch string  `json:"branch"`
	Total  float64 `json:"total"`
	Count  int64   `json:"count"`
}

// MonthlySummary is a single month/year bucket
type MonthlySummary struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// dashboardCacheKey names the per-user cache entry. Receipt mutations
// invalidate it so the dashboard never serves totals older than the mutation.
func dashboardCacheKey(userID uuid.UUID) string {
	return "dashboard:" + userID.String()
}

// GetStats returns the caller's dashboard summary, served from cache when
// available
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	cacheKey := dashboardCacheKey(userID)

	var cached DashboardStats
	if found, err := s.cacheStore.Get(ctx, cacheKey, &cached); err != nil {
		logrus.WithError(err).Warn("Dashboard cache read failed")
	} else if found {
		return &cached, nil
	}

	rows, err := s.analyticsRepo.GetRevenueRows(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeDashboardStats(rows)

	if err := s.cacheStore.Set(ctx, cacheKey, stats); err != nil {
		logrus.WithError(err).Warn("Dashboard cache write failed")
	}

	return stats, nil
}

// ComputeDashboardStats groups the fetched rows in process. Branch buckets
// appear in first-seen order of the fetched rows, as do month buckets; only
// the first six distinct month labels are kept. The monthly window is NOT
// sorted chronologically before truncation: rows arrive newest first, so the
// kept labels are the six most recently receipted months in fetch order, and
// clients depend on that exact window.
func ComputeDashboardStats(rows []repository.RevenueRow) *DashboardStats {
	stats := &DashboardStats{
		Branches: make([]BranchSummary, 0),
		Months:   make([]MonthlySummary, 0, MaxMonthlyBuckets),
	}

	totalIncome := decimal.Zero
	branchTotals := make(map[string]decimal.Decimal)
	branchCounts := make(map[string]int64)
	branchOrder := make([]string, 0)
	monthTotals := make(map[string]decimal.Decimal)
	monthOrder := make([]string, 0)

	for _, row := range rows {
		totalIncome = totalIncome.Add(row.TotalAmount)

		if _, seen := branchTotals[row.Branch]; !seen {
			branchOrder = append(branchOrder, row.Branch)
		}
		branchTotals[row.Branch] = branchTotals[row.Branch].Add(row.TotalAmount)
		branchCounts[row.Branch]++

		label := row.ReceiptDate.Format("Jan 2006")
		if _, seen := monthTotals[label]; !seen {
			if len(monthOrder) >= MaxMonthlyBuckets {
				continue
			}
			monthOrder = append(monthOrder, label)
		}
		monthTotals[label] = monthTotals[label].Add(row.TotalAmount)
	}

	stats.ReceiptCount = int64(len(rows))
	stats.TotalIncome = round2(totalIncome)
	if stats.ReceiptCount > 0 {
		stats.AverageReceipt = round2(totalIncome.Div(decimal.NewFromInt(stats.ReceiptCount)))
	}

	for _, branch := range branchOrder {
		stats.Branches = append(stats.Branches, BranchSummary{
			Branch: branch,
			Total:  round2(branchTotals[branch]),
			Count:  branchCounts[branch],
		})
	}

	for _, label := range monthOrder {
		stats.Months = append(stats.Months, MonthlySummary{
			Label: label,
			Total: round2(monthTotals[label]),
		})
	}

	return stats
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
