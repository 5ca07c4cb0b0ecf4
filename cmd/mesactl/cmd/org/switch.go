package org

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var switchCmd = &cobra.Command{
	Use:   "switch <org-id>",
	Short: "Switch the active organization",
	Long: `Switch the session to another organization. All cached tenant data is
discarded so following commands see only the new organization.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := ownerClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		user, err := mesaClient.SwitchOrganization(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to switch organization: %w", err)
		}

		name := user.Organization.Name
		if name == "" {
			name = user.Organization.ID
		}
		pterm.Success.Printf("Now operating as %s in %s\n", user.Name, name)
		return nil
	},
}
