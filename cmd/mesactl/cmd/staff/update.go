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
	updateName     string
	updateEmail    string
	updateRole     string
	updateStatus   string
	updatePermArgs []string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a staff account",
	Long: `Updates the given fields of a staff account. Passing --permission flags
replaces the whole permission map, not individual entries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		perms, err := parsePermissionArgs(updatePermArgs)
		if err != nil {
			return err
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		member, err := mesaClient.UpdateStaff(ctx, args[0], sdk.UpdateStaffInput{
			Name:        updateName,
			Email:       updateEmail,
			Role:        sdk.Role(updateRole),
			Status:      updateStatus,
			Permissions: perms,
		})
		if err != nil {
			return fmt.Errorf("failed to update staff member: %w", err)
		}

		pterm.Success.Printf("Updated staff member %s\n", member.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Display name")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "Account email")
	updateCmd.Flags().StringVar(&updateRole, "role", "", "Account role")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "Account status (active, inactive)")
	updateCmd.Flags().StringArrayVar(&updatePermArgs, "permission", nil, "Module permission as <module>:view[,edit]. Repeatable; replaces the map")
}
