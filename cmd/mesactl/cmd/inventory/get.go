package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one inventory item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		item, err := mesaClient.GetInventoryItem(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get inventory item: %w", err)
		}

		pterm.DefaultSection.Println(item.Name)
		fmt.Printf("ID:        %s\n", item.ID)
		fmt.Printf("Category:  %s\n", item.Category)
		fmt.Printf("Quantity:  %s %s\n", item.Quantity.String(), item.Unit)
		fmt.Printf("Minimum:   %s %s\n", item.MinQuantity.String(), item.Unit)
		fmt.Printf("Cost/unit: %s\n", item.CostPerUnit.StringFixed(2))
		if item.LowStock() {
			pterm.Warning.Println("Stock is at or below the minimum threshold")
		}
		return nil
	},
}
