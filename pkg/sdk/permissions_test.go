package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesaops/mesa/pkg/sdk"
)

func TestPrivilegedRolesBypassPermissionMap(t *testing.T) {
	for _, role := range []sdk.Role{sdk.RoleOwner, sdk.RoleAdmin} {
		u := &sdk.User{ID: "u1", Role: role} // no permission map at all
		for _, m := range sdk.Modules() {
			assert.True(t, sdk.CanView(u, m), "role %s should view %s", role, m)
			assert.True(t, sdk.CanEdit(u, m), "role %s should edit %s", role, m)
		}
	}
}

func TestScopedPermissionsFailClosed(t *testing.T) {
	u := &sdk.User{
		ID:   "u2",
		Role: sdk.RoleStaff,
		Permissions: sdk.PermissionMap{
			sdk.ModuleMenu:   {View: true, Edit: true},
			sdk.ModuleOrders: {View: true, Edit: false},
		},
	}

	assert.True(t, sdk.CanView(u, sdk.ModuleMenu))
	assert.True(t, sdk.CanEdit(u, sdk.ModuleMenu))

	assert.True(t, sdk.CanView(u, sdk.ModuleOrders))
	assert.False(t, sdk.CanEdit(u, sdk.ModuleOrders))

	// Absent modules resolve to no access, not an error.
	assert.False(t, sdk.CanView(u, sdk.ModuleSalary))
	assert.False(t, sdk.CanEdit(u, sdk.ModuleSalary))
	assert.False(t, sdk.CanView(u, sdk.Module("unknown")))
}

func TestNilUserHasNoAccess(t *testing.T) {
	for _, m := range sdk.Modules() {
		assert.False(t, sdk.CanView(nil, m))
		assert.False(t, sdk.CanEdit(nil, m))
	}
	assert.False(t, sdk.CanManageOrganizations(nil))
}

func TestEditWithoutViewIsRepresentable(t *testing.T) {
	u := &sdk.User{
		ID:          "u3",
		Role:        sdk.RoleStaff,
		Permissions: sdk.PermissionMap{sdk.ModuleInventory: {View: false, Edit: true}},
	}
	assert.False(t, sdk.CanView(u, sdk.ModuleInventory))
	assert.True(t, sdk.CanEdit(u, sdk.ModuleInventory))
}

func TestOrganizationManagementIsOwnerOnly(t *testing.T) {
	owner := &sdk.User{Role: sdk.RoleOwner}
	admin := &sdk.User{Role: sdk.RoleAdmin}
	staff := &sdk.User{
		Role: sdk.RoleStaff,
		// A permission map cannot grant tenant management.
		Permissions: sdk.PermissionMap{sdk.ModuleStaff: {View: true, Edit: true}},
	}

	assert.True(t, sdk.CanManageOrganizations(owner))
	assert.False(t, sdk.CanManageOrganizations(admin))
	assert.False(t, sdk.CanManageOrganizations(staff))
}

func TestResolvePolicyMatchesDirectChecks(t *testing.T) {
	u := &sdk.User{
		Role:        sdk.RoleStaff,
		Permissions: sdk.PermissionMap{sdk.ModuleSales: {View: true}},
	}
	p := sdk.ResolvePolicy(u)
	for _, m := range sdk.Modules() {
		assert.Equal(t, sdk.CanView(u, m), p.CanView(m), "view %s", m)
		assert.Equal(t, sdk.CanEdit(u, m), p.CanEdit(m), "edit %s", m)
	}
}
