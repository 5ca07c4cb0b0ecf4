package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// StaffCmd is the parent command for staff management.
var StaffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage staff accounts",
	Long:  `Commands for creating staff accounts, assigning per-module permissions and resetting passwords.`,
}

func init() {
	StaffCmd.AddCommand(listCmd)
	StaffCmd.AddCommand(getCmd)
	StaffCmd.AddCommand(createCmd)
	StaffCmd.AddCommand(updateCmd)
	StaffCmd.AddCommand(deleteCmd)
	StaffCmd.AddCommand(passwdCmd)
}

func viewClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireView(ctx, c, sdk.ModuleStaff); err != nil {
		return nil, err
	}
	return c, nil
}

func editClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireEdit(ctx, c, sdk.ModuleStaff); err != nil {
		return nil, err
	}
	return c, nil
}

// parsePermissionArgs turns repeated module:view[,edit] flags into a
// PermissionMap. Edit implies nothing about view; both flags are explicit.
func parsePermissionArgs(raw []string) (sdk.PermissionMap, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	perms := make(sdk.PermissionMap, len(raw))
	for _, arg := range raw {
		name, flags, found := strings.Cut(arg, ":")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --permission %q (want <module>:view[,edit])", arg)
		}
		var p sdk.Permission
		for _, f := range strings.Split(flags, ",") {
			switch strings.TrimSpace(f) {
			case "view":
				p.View = true
			case "edit":
				p.Edit = true
			case "":
			default:
				return nil, fmt.Errorf("invalid permission flag %q in %q", f, arg)
			}
		}
		perms[sdk.Module(name)] = p
	}
	return perms, nil
}

// formatPermissions renders a compact module:flags summary for tables.
func formatPermissions(perms sdk.PermissionMap) string {
	if len(perms) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(perms))
	for _, m := range sdk.Modules() {
		p, ok := perms[m]
		if !ok || (!p.View && !p.Edit) {
			continue
		}
		flags := ""
		if p.View {
			flags = "view"
		}
		if p.Edit {
			if flags != "" {
				flags += ","
			}
			flags += "edit"
		}
		parts = append(parts, fmt.Sprintf("%s:%s", m, flags))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
