package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// NormalizeSerial canonicalizes an organization serial number the way the
// server stores it: trimmed and uppercased (ORG + zero-padded digits).
func NormalizeSerial(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// LoginInput authenticates against one tenant. Validation runs client-side
// before any request is issued.
type LoginInput struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	OrganizationSerial string `json:"organizationSerial" validate:"required"`
}

// RegisterInput creates an owner identity together with a new organization.
// SerialNumber is optional; when empty it is omitted from the request body
// entirely so the server auto-generates the next serial.
type RegisterInput struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	ConfirmPassword  string `json:"-" validate:"required,eqfield=Password"`
	OrganizationName string `json:"organizationName" validate:"required"`
	SerialNumber     string `json:"serialNumber,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
}

// ChangePasswordInput is a self-service password change.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=NewPassword"`
}

// authResponse is the body of successful login and register calls.
type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login authenticates and stores the credentials in the session (and the
// durable store when configured). The serial is normalized before
// submission, so lowercase input succeeds identically to uppercase.
func (c *Client) Login(ctx context.Context, in LoginInput) (*User, error) {
	in.OrganizationSerial = NormalizeSerial(in.OrganizationSerial)
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid login input: %w", err)
	}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, in, &out, false); err != nil {
		return nil, err
	}
	if out.User == nil || out.Token == "" {
		return nil, fmt.Errorf("login response missing user or token")
	}
	if err := c.setCredentials(out.User, out.Token); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Register creates the owner and organization, then logs the session in with
// the returned credentials.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.SerialNumber = NormalizeSerial(in.SerialNumber)
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid registration input: %w", err)
	}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, in, &out, false); err != nil {
		return nil, err
	}
	if out.User == nil || out.Token == "" {
		return nil, fmt.Errorf("register response missing user or token")
	}
	if err := c.setCredentials(out.User, out.Token); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Me fetches the current identity and syncs it into the session, covering
// the restart case where only the durable token survived.
func (c *Client) Me(ctx context.Context) (*User, error) {
	u, err := get[*User](ctx, c, "/api/auth/me", nil, []Tag{TypeTag(TagUser)})
	if err != nil {
		return nil, err
	}

	sess := c.Session()
	if sess.User == nil || sess.User.ID != u.ID {
		token := sess.Token
		if token == "" && c.durable != nil {
			if persisted, perr := c.durable.Load(); perr == nil {
				token = persisted.Token
			}
		}
		if token != "" {
			if err := c.setCredentials(u, token); err != nil {
				return nil, err
			}
		}
	}
	return u, nil
}

// ChangePassword updates the caller's own password.
func (c *Client) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	if err := c.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid password input: %w", err)
	}
	return c.do(ctx, http.MethodPut, "/api/auth/change-password", nil, in, nil, true)
}

// Logout is purely local: it resets the session, removes the persisted
// token, and drops every cached response.
func (c *Client) Logout() {
	c.resetSession()
	c.cache.Reset()
}
