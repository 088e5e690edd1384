package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestDashboardCacheKeyPerUser(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	if got, want := dashboardCacheKey(a), "dashboard:"+a.String(); got != want {
		t.Errorf("key = %q, want %q", got, want)
	}
	if dashboardCacheKey(a) == dashboardCacheKey(b) {
		t.Error("expected distinct cache keys for distinct users")
	}
}

func TestInvalidateDashboardWithoutCache(t *testing.T) {
	svc := NewReceiptService(nil, nil)

	// Must be a no-op when Redis is not configured
	svc.invalidateDashboard(context.Background(), uuid.New())
}
