package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	createName     string
	createEmail    string
	createPassword string
	createRole     string
	createPermArgs []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a staff account",
	Long: `Creates a staff account in the active organization. Per-module permissions
are passed as repeated --permission flags, e.g. --permission menu:view,edit
--permission orders:view.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		perms, err := parsePermissionArgs(createPermArgs)
		if err != nil {
			return err
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		member, err := mesaClient.CreateStaff(ctx, sdk.CreateStaffInput{
			Name:        createName,
			Email:       createEmail,
			Password:    createPassword,
			Role:        sdk.Role(createRole),
			Permissions: perms,
		})
		if err != nil {
			return fmt.Errorf("failed to create staff member: %w", err)
		}

		pterm.Success.Printf("Created staff member %s (%s)\n", member.Name, member.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Display name")
	createCmd.Flags().StringVar(&createEmail, "email", "", "Account email")
	createCmd.Flags().StringVar(&createPassword, "password", "", "Initial password (min 6 characters)")
	createCmd.Flags().StringVar(&createRole, "role", string(sdk.RoleStaff), "Account role (staff, admin)")
	createCmd.Flags().StringArrayVar(&createPermArgs, "permission", nil, "Module permission as <module>:view[,edit]. Repeatable")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")
}
