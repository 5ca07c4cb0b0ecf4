package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// MenuItem is one dish or drink on the menu.
type MenuItem struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"isAvailable"`
}

// CreateMenuItemInput is the body for creating a menu item.
type CreateMenuItemInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"isAvailable"`
}

// UpdateMenuItemInput updates an existing item. Zero-valued optional fields
// are omitted so the server keeps their current values.
type UpdateMenuItemInput struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Available   *bool            `json:"isAvailable,omitempty"`
}

// ListMenuItemsOptions filters the menu listing.
type ListMenuItemsOptions struct {
	Category  string
	Available *bool
}

func (o ListMenuItemsOptions) values() url.Values {
	q := url.Values{}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Available != nil {
		q.Set("isAvailable", fmt.Sprintf("%t", *o.Available))
	}
	return q
}

// ListMenuItems returns the menu, cached under the Menu tag.
func (c *Client) ListMenuItems(ctx context.Context, opts ListMenuItemsOptions) ([]MenuItem, error) {
	return get[[]MenuItem](ctx, c, "/api/menu", opts.values(), []Tag{TypeTag(TagMenu)})
}

// GetMenuItem returns one menu item, cached under its detail tag.
func (c *Client) GetMenuItem(ctx context.Context, id string) (*MenuItem, error) {
	return get[*MenuItem](ctx, c, "/api/menu/"+id, nil, []Tag{IDTag(TagMenu, id)})
}

// CreateMenuItem adds a menu item and invalidates menu listings.
func (c *Client) CreateMenuItem(ctx context.Context, in CreateMenuItemInput) (*MenuItem, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid menu item: %w", err)
	}
	var out MenuItem
	err := c.cache.Mutate(ctx, []Tag{TypeTag(TagMenu)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/menu", nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItem modifies a menu item and invalidates its detail tag only;
// listings keep serving their cached snapshot until a list-level change.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, in UpdateMenuItemInput) (*MenuItem, error) {
	var out MenuItem
	err := c.cache.Mutate(ctx, []Tag{IDTag(TagMenu, id)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, "/api/menu/"+id, nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenuItem removes a menu item and invalidates all menu entries.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.cache.Mutate(ctx, []Tag{TypeTag(TagMenu)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodDelete, "/api/menu/"+id, nil, nil, nil, true)
	})
}
