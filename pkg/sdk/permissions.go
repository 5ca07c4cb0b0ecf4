package sdk

// Module is a named functional area used as the unit of permission
// granularity. The set is fixed by the API; unknown names fail closed.
type Module string

const (
	ModuleMenu      Module = "menu"
	ModuleInventory Module = "inventory"
	ModuleOrders    Module = "orders"
	ModuleStaff     Module = "staff"
	ModuleSalary    Module = "salary"
	ModuleSales     Module = "sales"
	ModuleAnalytics Module = "analytics"
	ModuleInvoices  Module = "invoices"
)

// Modules lists every permission-gated module in display order.
func Modules() []Module {
	return []Module{
		ModuleMenu, ModuleInventory, ModuleOrders, ModuleStaff,
		ModuleSalary, ModuleSales, ModuleAnalytics, ModuleInvoices,
	}
}

// Permission holds the per-module view/edit flags. Edit without view is
// representable; the API never produces it but the model does not forbid it.
type Permission struct {
	View bool `json:"view"`
	Edit bool `json:"edit"`
}

// PermissionMap maps module names to their permission flags.
type PermissionMap map[Module]Permission

// Policy is the resolved authorization decision procedure for one identity.
// It has exactly two variants: privileged (owner/admin, always allow) and
// scoped (map lookup, absent keys resolve to false).
type Policy struct {
	privileged bool
	scoped     PermissionMap
}

// ResolvePolicy derives the Policy for a user. Resolve once per identity
// rather than re-branching on role at every call site.
func ResolvePolicy(u *User) Policy {
	if u == nil {
		return Policy{}
	}
	if u.Role.Privileged() {
		return Policy{privileged: true}
	}
	return Policy{scoped: u.Permissions}
}

func (p Policy) CanView(m Module) bool {
	if p.privileged {
		return true
	}
	return p.scoped[m].View
}

func (p Policy) CanEdit(m Module) bool {
	if p.privileged {
		return true
	}
	return p.scoped[m].Edit
}

// CanView reports whether the user may see the given module.
// Pure function of its inputs; safe to call from rendering and from
// request-side validation with identical results.
func CanView(u *User, m Module) bool {
	return ResolvePolicy(u).CanView(m)
}

// CanEdit reports whether the user may modify the given module.
func CanEdit(u *User, m Module) bool {
	return ResolvePolicy(u).CanEdit(m)
}

// CanManageOrganizations gates tenant management. It depends solely on the
// owner role and bypasses the module permission map entirely.
func CanManageOrganizations(u *User) bool {
	return u != nil && u.Role == RoleOwner
}
