package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// InventoryItem tracks one stocked ingredient or supply.
type InventoryItem struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	MinQuantity decimal.Decimal `json:"minQuantity"`
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
	Status      string          `json:"status,omitempty"`
}

// LowStock reports whether the item has fallen to or below its threshold.
func (i InventoryItem) LowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinQuantity)
}

type CreateInventoryItemInput struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	MinQuantity decimal.Decimal `json:"minQuantity"`
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
}

type UpdateInventoryItemInput struct {
	Name        string           `json:"name,omitempty"`
	Category    string           `json:"category,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Unit        string           `json:"unit,omitempty"`
	MinQuantity *decimal.Decimal `json:"minQuantity,omitempty"`
	CostPerUnit *decimal.Decimal `json:"costPerUnit,omitempty"`
}

// ListInventoryOptions filters the inventory listing.
type ListInventoryOptions struct {
	Category string
}

func (o ListInventoryOptions) values() url.Values {
	q := url.Values{}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	return q
}

func (c *Client) ListInventory(ctx context.Context, opts ListInventoryOptions) ([]InventoryItem, error) {
	return get[[]InventoryItem](ctx, c, "/api/inventory", opts.values(), []Tag{TypeTag(TagInventory)})
}

func (c *Client) GetInventoryItem(ctx context.Context, id string) (*InventoryItem, error) {
	return get[*InventoryItem](ctx, c, "/api/inventory/"+id, nil, []Tag{IDTag(TagInventory, id)})
}

// LowStockAlerts lists items at or below their minimum quantity. Tagged
// Inventory so any stock mutation refreshes the alert view.
func (c *Client) LowStockAlerts(ctx context.Context) ([]InventoryItem, error) {
	return get[[]InventoryItem](ctx, c, "/api/inventory/alerts/low-stock", nil, []Tag{TypeTag(TagInventory)})
}

func (c *Client) CreateInventoryItem(ctx context.Context, in CreateInventoryItemInput) (*InventoryItem, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid inventory item: %w", err)
	}
	var out InventoryItem
	err := c.cache.Mutate(ctx, []Tag{TypeTag(TagInventory)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/inventory", nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInventoryItem(ctx context.Context, id string, in UpdateInventoryItemInput) (*InventoryItem, error) {
	var out InventoryItem
	err := c.cache.Mutate(ctx, []Tag{IDTag(TagInventory, id)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, "/api/inventory/"+id, nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInventoryItem(ctx context.Context, id string) error {
	return c.cache.Mutate(ctx, []Tag{TypeTag(TagInventory)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodDelete, "/api/inventory/"+id, nil, nil, nil, true)
	})
}
