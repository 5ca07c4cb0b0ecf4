package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// switchTags is the deliberately broad invalidation set for a tenant switch.
// Nearly all data is tenant-scoped and must never leak across organizations,
// so everything except untagged on-demand lookups is flushed.
var switchTags = []Tag{
	TypeTag(TagUser), TypeTag(TagOrganization), TypeTag(TagMenu),
	TypeTag(TagInventory), TypeTag(TagOrder), TypeTag(TagStaff),
	TypeTag(TagSalary), TypeTag(TagSales), TypeTag(TagAnalytics),
}

type CreateOrganizationInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
}

type UpdateOrganizationInput struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
}

// AddOrganizationStaffInput creates a staff account inside a specific tenant
// (owner-only tenant management, distinct from the staff module).
type AddOrganizationStaffInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role,omitempty"`
}

func (c *Client) ListOrganizations(ctx context.Context) ([]OrganizationRef, error) {
	return get[[]OrganizationRef](ctx, c, "/api/organizations", nil, []Tag{TypeTag(TagOrganization)})
}

func (c *Client) GetOrganization(ctx context.Context, id string) (*OrganizationRef, error) {
	return get[*OrganizationRef](ctx, c, "/api/organizations/"+id, nil, []Tag{IDTag(TagOrganization, id)})
}

// NextSerial asks the server for the next free organization serial. Fetched
// on demand and deliberately untagged: the value is consumed immediately by
// a registration form, never kept.
func (c *Client) NextSerial(ctx context.Context) (string, error) {
	var out struct {
		SerialNumber string `json:"serialNumber"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/organizations/next-serial", nil, nil, &out, true); err != nil {
		return "", err
	}
	return out.SerialNumber, nil
}

func (c *Client) CreateOrganization(ctx context.Context, in CreateOrganizationInput) (*OrganizationRef, error) {
	in.SerialNumber = NormalizeSerial(in.SerialNumber)
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid organization: %w", err)
	}
	var out OrganizationRef
	err := c.cache.Mutate(ctx, []Tag{TypeTag(TagOrganization)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/organizations", nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id string, in UpdateOrganizationInput) (*OrganizationRef, error) {
	var out OrganizationRef
	err := c.cache.Mutate(ctx, []Tag{IDTag(TagOrganization, id)}, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPut, "/api/organizations/"+id, nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddOrganizationStaff creates a staff account in the given organization.
func (c *Client) AddOrganizationStaff(ctx context.Context, orgID string, in AddOrganizationStaffInput) (*StaffMember, error) {
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid staff member: %w", err)
	}
	var out StaffMember
	tags := []Tag{TypeTag(TagOrganization), TypeTag(TagStaff), TypeTag(TagUser)}
	err := c.cache.Mutate(ctx, tags, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/organizations/"+orgID+"/staff", nil, in, &out, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SwitchOrganization changes the session's active tenant. Switching to the
// already-active organization is a no-op that issues zero requests. On
// success the server-returned user replaces the session user (server-held
// role, permissions and organization win over client-held values) and the
// broad tag set above is invalidated, so no tenant-scoped view can survive
// the switch. On failure session and cache are untouched.
func (c *Client) SwitchOrganization(ctx context.Context, orgID string) (*User, error) {
	if orgID == "" {
		return nil, fmt.Errorf("organization id is required")
	}

	sess := c.Session()
	if sess.User != nil && sess.User.Organization.ID == orgID {
		return sess.User, nil
	}

	var out struct {
		User *User `json:"user"`
	}
	body := map[string]string{"organizationId": orgID}
	err := c.cache.Mutate(ctx, switchTags, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, "/api/organizations/switch", nil, body, &out, true)
	})
	if err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, fmt.Errorf("switch response missing user")
	}
	if err := c.UpdateSessionUser(out.User); err != nil {
		return nil, err
	}
	return out.User, nil
}
