package sdk

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Role identifies the coarse authorization level of a user.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Privileged reports whether the role bypasses per-module permission checks.
func (r Role) Privileged() bool {
	return r == RoleOwner || r == RoleAdmin
}

// User is the authenticated identity returned by the Mesa API.
type User struct {
	ID                 string          `json:"_id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Role               Role            `json:"role"`
	Organization       OrganizationRef `json:"organization"`
	OrganizationSerial string          `json:"organizationSerial,omitempty"`
	Permissions        PermissionMap   `json:"permissions,omitempty"`
	Status             string          `json:"status,omitempty"`
}

// OrganizationRef identifies a tenant. The API sometimes returns the
// organization as a populated object and sometimes as a bare id string
// (unpopulated reference), so unmarshalling accepts both forms.
type OrganizationRef struct {
	ID           string `json:"_id"`
	Name         string `json:"name,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Status       string `json:"status,omitempty"`
}

func (o *OrganizationRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*o = OrganizationRef{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("organization reference: %w", err)
		}
		*o = OrganizationRef{ID: id}
		return nil
	}
	type plain OrganizationRef
	var ref plain
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("organization reference: %w", err)
	}
	*o = OrganizationRef(ref)
	return nil
}

// Populated reports whether the reference carries more than a bare id.
func (o OrganizationRef) Populated() bool {
	return o.Name != "" || o.SerialNumber != ""
}
