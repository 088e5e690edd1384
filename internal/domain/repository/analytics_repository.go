package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRow is the projection of a receipt used by dashboard aggregation.
// Rows are returned in creation order, newest first; the aggregation layer
// depends on that fetch order.
type RevenueRow struct {
	TotalAmount decimal.Decimal
	ReceiptDate time.Time
	Branch      string
}

// AnalyticsRepository defines read-only queries backing the dashboard
type AnalyticsRepository interface {
	GetRevenueRows(ctx context.Context) ([]RevenueRow, error)
}
