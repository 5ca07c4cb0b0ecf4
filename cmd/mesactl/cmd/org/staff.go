package org

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	staffName     string
	staffEmail    string
	staffPassword string
	staffRole     string
)

var staffCmd = &cobra.Command{
	Use:   "staff <org-id>",
	Short: "Add a staff account to an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := ownerClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		member, err := mesaClient.AddOrganizationStaff(ctx, args[0], sdk.AddOrganizationStaffInput{
			Name:     staffName,
			Email:    staffEmail,
			Password: staffPassword,
			Role:     sdk.Role(staffRole),
		})
		if err != nil {
			return fmt.Errorf("failed to add staff member: %w", err)
		}

		pterm.Success.Printf("Added %s (%s) to organization %s\n", member.Name, member.Email, args[0])
		return nil
	},
}

func init() {
	staffCmd.Flags().StringVar(&staffName, "name", "", "Staff member name")
	staffCmd.Flags().StringVar(&staffEmail, "email", "", "Staff member email")
	staffCmd.Flags().StringVar(&staffPassword, "password", "", "Initial password (min 6 characters)")
	staffCmd.Flags().StringVar(&staffRole, "role", string(sdk.RoleStaff), "Account role (owner, admin, staff)")
	_ = staffCmd.MarkFlagRequired("name")
	_ = staffCmd.MarkFlagRequired("email")
	_ = staffCmd.MarkFlagRequired("password")
}
