package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	updateName     string
	updateCategory string
	updateQuantity string
	updateUnit     string
	updateMin      string
	updateCost     string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an inventory item",
	Long:  `Updates the given fields of an inventory item. Flags that are not set keep their current values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		in := sdk.UpdateInventoryItemInput{
			Name:     updateName,
			Category: updateCategory,
			Unit:     updateUnit,
		}
		if cobraCmd.Flags().Changed("quantity") {
			qty, err := decimal.NewFromString(updateQuantity)
			if err != nil {
				return fmt.Errorf("invalid --quantity %q: %w", updateQuantity, err)
			}
			in.Quantity = &qty
		}
		if cobraCmd.Flags().Changed("min") {
			minQty, err := decimal.NewFromString(updateMin)
			if err != nil {
				return fmt.Errorf("invalid --min %q: %w", updateMin, err)
			}
			in.MinQuantity = &minQty
		}
		if cobraCmd.Flags().Changed("cost") {
			cost, err := decimal.NewFromString(updateCost)
			if err != nil {
				return fmt.Errorf("invalid --cost %q: %w", updateCost, err)
			}
			in.CostPerUnit = &cost
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		item, err := mesaClient.UpdateInventoryItem(ctx, args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update inventory item: %w", err)
		}

		pterm.Success.Printf("Updated inventory item %s\n", item.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Item name")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "Item category")
	updateCmd.Flags().StringVar(&updateQuantity, "quantity", "", "Current stock quantity")
	updateCmd.Flags().StringVar(&updateUnit, "unit", "", "Unit of measure")
	updateCmd.Flags().StringVar(&updateMin, "min", "", "Minimum quantity threshold")
	updateCmd.Flags().StringVar(&updateCost, "cost", "", "Cost per unit, decimal")
}
