package repository

import (
	"context"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	domainRepo "github.com/clinicbook/receipts-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// GetRevenueRows fetches the (amount, date, branch) projection of every
// receipt visible to the caller, newest first. Grouping happens in the
// service after this full fetch; there is no server-side aggregation.
func (r *analyticsRepository) GetRevenueRows(ctx context.Context) ([]domainRepo.RevenueRow, error) {
	var rows []domainRepo.RevenueRow
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Scopes(OwnerScope(ctx)).
		Select("total_amount, receipt_date, branch").
		Order("created_at DESC").
		Scan(&rows).Error
	return rows, err
}
