package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// StaffMember is an employee account within the active organization.
type StaffMember struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Role        Role          `json:"role"`
	Permissions PermissionMap `json:"permissions,omitempty"`
	Status      string        `json:"status,omitempty"`
}

type CreateStaffInput struct {
	Name        string        `json:"name" validate:"required"`
	Email       string        `json:"email" validate:"required,email"`
	Password    string        `json:"password" validate:"required,min=6"`
	Role        Role          `json:"role,omitempty"`
	Permissions PermissionMap `json:"permissions,omitempty"`
}

type UpdateStaffInput struct {
	Name        string        `json:"name,omitempty"`
	Email       string        `json:"email,omitempty"`
	Role        Role          `json:"role,omitempty"`
	Permissions PermissionMap `json:"permissions,omitempty"`
	Status      string        `json:"status,omitempty"`
}

func (c *Client) ListStaff(ctx context.Context) ([]StaffMember, error) {
	return get[[]StaffMember](ctx, c, "/api/staff", nil, []Tag{TypeTag(TagStaff)})
}

func (c *Client) GetStaffMember(ctx context.Context, id string) (*StaffMember, error) {
	return get[*StaffMember](ctx, c, "/api/staff/"+id, nil, []Tag{IDTag(TagStaff, id)})
}

func (c *Client) CreateStaff(ctx context.Context, in CreateStaffInput) (*StaffMember, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid staff member: %w", err)
	}
	var out StaffMember
	err := c.cache.Mutate(ctx, []Tag{TypeTag(TagStaff)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/staff", nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStaff(ctx context.Context, id string, in UpdateStaffInput) (*StaffMember, error) {
	var out StaffMember
	err := c.cache.Mutate(ctx, []Tag{IDTag(TagStaff, id)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, "/api/staff/"+id, nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	return c.cache.Mutate(ctx, []Tag{TypeTag(TagStaff)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodDelete, "/api/staff/"+id, nil, nil, nil, true)
	})
}

// SetStaffPassword resets a staff member's password (management action, not
// the self-service change-password flow).
func (c *Client) SetStaffPassword(ctx context.Context, id, password string) error {
	if len(password) < 6 {
		return fmt.Errorf("invalid staff password: must be at least 6 characters")
	}
	body := map[string]string{"password": password}
	return c.cache.Mutate(ctx, []Tag{TypeTag(TagStaff)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, "/api/staff/"+id+"/password", nil, body, nil, true)
	})
}
