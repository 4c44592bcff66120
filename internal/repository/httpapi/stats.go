package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"lightweight-feedback-system/internal/entities"
)

const statsPath = "/dashboard/stats"

// DashboardStats returns sentiment and acknowledgment counters.
func (c *Client) DashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	var res entities.DashboardStats
	if err := c.do(ctx, http.MethodGet, statsPath, nil, &res); err != nil {
		return entities.DashboardStats{}, fmt.Errorf("get dashboard stats: %w", err)
	}
	return res, nil
}
