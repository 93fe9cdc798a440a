package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	Overview(ctx context.Context, day time.Time) (*OverviewResponse, error)
}
