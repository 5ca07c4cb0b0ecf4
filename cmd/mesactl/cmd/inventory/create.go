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
	createName     string
	createCategory string
	createQuantity string
	createUnit     string
	createMin      string
	createCost     string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an inventory item",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		qty, err := decimal.NewFromString(createQuantity)
		if err != nil {
			return fmt.Errorf("invalid --quantity %q: %w", createQuantity, err)
		}
		minQty, err := decimal.NewFromString(createMin)
		if err != nil {
			return fmt.Errorf("invalid --min %q: %w", createMin, err)
		}
		cost, err := decimal.NewFromString(createCost)
		if err != nil {
			return fmt.Errorf("invalid --cost %q: %w", createCost, err)
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		item, err := mesaClient.CreateInventoryItem(ctx, sdk.CreateInventoryItemInput{
			Name:        createName,
			Category:    createCategory,
			Quantity:    qty,
			Unit:        createUnit,
			MinQuantity: minQty,
			CostPerUnit: cost,
		})
		if err != nil {
			return fmt.Errorf("failed to create inventory item: %w", err)
		}

		pterm.Success.Printf("Created inventory item %s (%s)\n", item.Name, item.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Item name")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Item category")
	createCmd.Flags().StringVar(&createQuantity, "quantity", "0", "Current stock quantity")
	createCmd.Flags().StringVar(&createUnit, "unit", "", "Unit of measure (kg, l, pcs)")
	createCmd.Flags().StringVar(&createMin, "min", "0", "Minimum quantity before a low-stock alert")
	createCmd.Flags().StringVar(&createCost, "cost", "0", "Cost per unit, decimal")
	_ = createCmd.MarkFlagRequired("name")
}
