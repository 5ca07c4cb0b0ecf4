package org

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <org-id>",
	Short: "Show one organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := ownerClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		o, err := mesaClient.GetOrganization(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch organization: %w", err)
		}

		pterm.DefaultSection.Println(o.Name)
		fmt.Printf("ID:      %s\n", o.ID)
		fmt.Printf("Serial:  %s\n", o.SerialNumber)
		if o.Email != "" {
			fmt.Printf("Email:   %s\n", o.Email)
		}
		if o.Phone != "" {
			fmt.Printf("Phone:   %s\n", o.Phone)
		}
		if o.Address != "" {
			fmt.Printf("Address: %s\n", o.Address)
		}
		if o.Status != "" {
			fmt.Printf("Status:  %s\n", o.Status)
		}
		return nil
	},
}
