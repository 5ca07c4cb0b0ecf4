package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one day's aggregated takings.
type SalesRecord struct {
	ID          string          `json:"_id"`
	Date        string          `json:"date"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	OrderCount  int             `json:"orderCount"`
	AvgOrderVal decimal.Decimal `json:"averageOrderValue"`
}

// SalesSummary aggregates sales over a reporting window.
type SalesSummary struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	AverageOrder  decimal.Decimal `json:"averageOrderValue"`
	BestDay       string          `json:"bestDay,omitempty"`
	BestDayAmount decimal.Decimal `json:"bestDayAmount"`
}

type DailySalesInput struct {
	Date       string          `json:"date" validate:"required"`
	TotalSales decimal.Decimal `json:"totalSales"`
	OrderCount int             `json:"orderCount"`
}

// SalesWindow bounds list and summary queries by date.
type SalesWindow struct {
	From time.Time
	To   time.Time
}

func (w SalesWindow) values() url.Values {
	q := url.Values{}
	if !w.From.IsZero() {
		q.Set("startDate", w.From.Format("2006-01-02"))
	}
	if !w.To.IsZero() {
		q.Set("endDate", w.To.Format("2006-01-02"))
	}
	return q
}

func (c *Client) ListSales(ctx context.Context, w SalesWindow) ([]SalesRecord, error) {
	return get[[]SalesRecord](ctx, c, "/api/sales", w.values(), []Tag{TypeTag(TagSales)})
}

func (c *Client) SalesSummary(ctx context.Context, w SalesWindow) (*SalesSummary, error) {
	return get[*SalesSummary](ctx, c, "/api/sales/summary", w.values(), []Tag{TypeTag(TagSales)})
}

// RecordDailySales posts a manual daily aggregation.
func (c *Client) RecordDailySales(ctx context.Context, in DailySalesInput) (*SalesRecord, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid daily sales: %w", err)
	}
	var out SalesRecord
	err := c.cache.Mutate(ctx, []Tag{TypeTag(TagSales)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/sales/daily", nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
