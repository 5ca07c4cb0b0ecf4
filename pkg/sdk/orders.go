package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses as reported by the API.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCancelled = "cancelled"
)

// OrderItem is one line of an order.
type OrderItem struct {
	MenuItemID string          `json:"menuItem"`
	Name       string          `json:"name,omitempty"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// Order is a placed order with its derived total.
type Order struct {
	ID          string          `json:"_id"`
	OrderNumber string          `json:"orderNumber,omitempty"`
	TableNumber int             `json:"tableNumber,omitempty"`
	Items       []OrderItem     `json:"items"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt,omitzero"`
}

type CreateOrderInput struct {
	TableNumber int         `json:"tableNumber,omitempty"`
	Items       []OrderItem `json:"items" validate:"required,min=1,dive"`
	Notes       string      `json:"notes,omitempty"`
}

type UpdateOrderInput struct {
	Status string      `json:"status,omitempty"`
	Items  []OrderItem `json:"items,omitempty"`
}

// ListOrdersOptions filters the order listing.
type ListOrdersOptions struct {
	Status string
	From   time.Time
	To     time.Time
}

func (o ListOrdersOptions) values() url.Values {
	q := url.Values{}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if !o.From.IsZero() {
		q.Set("startDate", o.From.Format("2006-01-02"))
	}
	if !o.To.IsZero() {
		q.Set("endDate", o.To.Format("2006-01-02"))
	}
	return q
}

func (c *Client) ListOrders(ctx context.Context, opts ListOrdersOptions) ([]Order, error) {
	return get[[]Order](ctx, c, "/api/orders", opts.values(), []Tag{TypeTag(TagOrder)})
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	return get[*Order](ctx, c, "/api/orders/"+id, nil, []Tag{IDTag(TagOrder, id)})
}

// CreateOrder places an order. Dashboard and sales figures derive from
// orders, so the invalidation set covers Analytics and Sales as well.
func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}
	var out Order
	err := c.cache.Mutate(ctx, []Tag{TypeTag(TagOrder), TypeTag(TagAnalytics), TypeTag(TagSales)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/orders", nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (*Order, error) {
	var out Order
	tags := []Tag{IDTag(TagOrder, id), TypeTag(TagAnalytics), TypeTag(TagSales)}
	err := c.cache.Mutate(ctx, tags, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, "/api/orders/"+id, nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	tags := []Tag{TypeTag(TagOrder), TypeTag(TagAnalytics), TypeTag(TagSales)}
	return c.cache.Mutate(ctx, tags, func(ctx context.Context) error {
		return c.do(ctx, http.MethodDelete, "/api/orders/"+id, nil, nil, nil, true)
	})
}
