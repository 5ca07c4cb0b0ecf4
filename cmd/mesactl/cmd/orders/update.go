package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var updateStatus string

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an order's status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		order, err := mesaClient.UpdateOrder(ctx, args[0], sdk.UpdateOrderInput{Status: updateStatus})
		if err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		pterm.Success.Printf("Order %s is now %s\n", order.ID, order.Status)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status (pending, preparing, ready, served, cancelled)")
	_ = updateCmd.MarkFlagRequired("status")
}
