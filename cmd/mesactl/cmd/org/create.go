package org

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var createIn sdk.CreateOrganizationInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an organization",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := ownerClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		// When no serial is given the server assigns the next free one.
		o, err := mesaClient.CreateOrganization(ctx, createIn)
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		pterm.Success.Printf("Created organization %s (serial %s)\n", o.Name, o.SerialNumber)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createIn.Name, "name", "", "Organization name")
	createCmd.Flags().StringVar(&createIn.Email, "email", "", "Contact email")
	createCmd.Flags().StringVar(&createIn.Phone, "phone", "", "Contact phone")
	createCmd.Flags().StringVar(&createIn.Address, "address", "", "Street address")
	createCmd.Flags().StringVar(&createIn.SerialNumber, "serial", "", "Organization serial (assigned by the server when omitted)")
	_ = createCmd.MarkFlagRequired("name")
}
