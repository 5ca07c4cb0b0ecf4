package org

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var updateIn sdk.UpdateOrganizationInput

var updateCmd = &cobra.Command{
	Use:   "update <org-id>",
	Short: "Update an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := ownerClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		o, err := mesaClient.UpdateOrganization(ctx, args[0], updateIn)
		if err != nil {
			return fmt.Errorf("failed to update organization: %w", err)
		}

		pterm.Success.Printf("Updated organization %s\n", o.Name)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateIn.Name, "name", "", "Organization name")
	updateCmd.Flags().StringVar(&updateIn.Email, "email", "", "Contact email")
	updateCmd.Flags().StringVar(&updateIn.Phone, "phone", "", "Contact phone")
	updateCmd.Flags().StringVar(&updateIn.Address, "address", "", "Street address")
	updateCmd.Flags().StringVar(&updateIn.Status, "status", "", "Organization status (active, inactive)")
}
