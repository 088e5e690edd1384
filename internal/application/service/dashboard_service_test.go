package service_test

import (
	"testing"
	"time"

	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

func row(amount int64, date time.Time, branch string) repository.RevenueRow {
	return repository.RevenueRow{
		TotalAmount: decimal.NewFromInt(amount),
		ReceiptDate: date,
		Branch:      branch,
	}
}

func TestComputeDashboardStatsTotals(t *testing.T) {
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows := []repository.RevenueRow{
		row(944, march, "Indiranagar"),
		row(500, march, "Koramangala"),
		row(556, march, "Indiranagar"),
	}

	stats := service.ComputeDashboardStats(rows)

	if stats.TotalIncome != 2000 {
		t.Errorf("total income = %v, want 2000", stats.TotalIncome)
	}
	if stats.ReceiptCount != 3 {
		t.Errorf("receipt count = %d, want 3", stats.ReceiptCount)
	}
	if stats.AverageReceipt != 666.67 {
		t.Errorf("average = %v, want 666.67", stats.AverageReceipt)
	}

	if len(stats.Branches) != 2 {
		t.Fatalf("branches = %d, want 2", len(stats.Branches))
	}
	// Branch buckets appear in first-seen order of the rows
	if stats.Branches[0].Branch != "Indiranagar" || stats.Branches[0].Total != 1500 || stats.Branches[0].Count != 2 {
		t.Errorf("first branch = %+v", stats.Branches[0])
	}
	if stats.Branches[1].Branch != "Koramangala" || stats.Branches[1].Total != 500 {
		t.Errorf("second branch = %+v", stats.Branches[1])
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := service.ComputeDashboardStats(nil)

	if stats.TotalIncome != 0 || stats.ReceiptCount != 0 || stats.AverageReceipt != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
	if len(stats.Branches) != 0 || len(stats.Months) != 0 {
		t.Errorf("expected empty buckets, got %+v", stats)
	}
}

// Month buckets are keyed by label in the order rows arrive, capped at six
// distinct labels. Rows are fetched newest first, so the window is the six
// most recently seen month labels, not a chronologically sorted range.
func TestComputeDashboardStatsMonthlyWindow(t *testing.T) {
	var rows []repository.RevenueRow
	// Eight distinct months, newest first, mimicking created_at DESC order
	for i := 0; i < 8; i++ {
		date := time.Date(2026, time.Month(8-i), 1, 0, 0, 0, 0, time.UTC)
		rows = append(rows, row(100, date, "Indiranagar"))
	}

	stats := service.ComputeDashboardStats(rows)

	if len(stats.Months) != service.MaxMonthlyBuckets {
		t.Fatalf("months = %d, want %d", len(stats.Months), service.MaxMonthlyBuckets)
	}

	want := []string{"Aug 2026", "Jul 2026", "Jun 2026", "May 2026", "Apr 2026", "Mar 2026"}
	for i, label := range want {
		if stats.Months[i].Label != label {
			t.Errorf("months[%d] = %q, want %q", i, stats.Months[i].Label, label)
		}
	}

	// Rows beyond the window are excluded from month buckets but still count
	// toward the totals
	if stats.TotalIncome != 800 {
		t.Errorf("total income = %v, want 800", stats.TotalIncome)
	}
	if stats.ReceiptCount != 8 {
		t.Errorf("receipt count = %d, want 8", stats.ReceiptCount)
	}
}

func TestComputeDashboardStatsMonthRevisited(t *testing.T) {
	jan := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	rows := []repository.RevenueRow{
		row(100, feb, "A"),
		row(200, jan, "A"),
		row(300, feb, "A"), // label already bucketed, amount accumulates
	}

	stats := service.ComputeDashboardStats(rows)

	if len(stats.Months) != 2 {
		t.Fatalf("months = %d, want 2", len(stats.Months))
	}
	if stats.Months[0].Label != "Feb 2026" || stats.Months[0].Total != 400 {
		t.Errorf("feb bucket = %+v", stats.Months[0])
	}
	if stats.Months[1].Label != "Jan 2026" || stats.Months[1].Total != 200 {
		t.Errorf("jan bucket = %+v", stats.Months[1])
	}
}
