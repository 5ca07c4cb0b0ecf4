package sdk

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
)

// DashboardMetrics is the aggregate view rendered on the dashboard.
type DashboardMetrics struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TodayRevenue  decimal.Decimal `json:"todayRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	PendingOrders int             `json:"pendingOrders"`
	MenuItems     int             `json:"menuItems"`
	StaffCount    int             `json:"staffCount"`
	LowStockCount int             `json:"lowStockCount"`
}

// RevenuePoint is one bucket of the revenue chart.
type RevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// RevenueChartOptions selects the chart bucketing period (daily, weekly,
// monthly), server-defined.
type RevenueChartOptions struct {
	Period string
}

func (o RevenueChartOptions) values() url.Values {
	q := url.Values{}
	if o.Period != "" {
		q.Set("period", o.Period)
	}
	return q
}

// Dashboard returns the aggregated metrics, cached under Analytics so any
// order or sales mutation refreshes it.
func (c *Client) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	return get[*DashboardMetrics](ctx, c, "/api/analytics/dashboard", nil, []Tag{TypeTag(TagAnalytics)})
}

// RevenueChart returns revenue buckets for the requested period.
func (c *Client) RevenueChart(ctx context.Context, opts RevenueChartOptions) ([]RevenuePoint, error) {
	return get[[]RevenuePoint](ctx, c, "/api/analytics/revenue-chart", opts.values(), []Tag{TypeTag(TagAnalytics)})
}
