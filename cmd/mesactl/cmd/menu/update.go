package menu

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
	updateName        string
	updateDescription string
	updateCategory    string
	updatePrice       string
	updateAvailable   bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a menu item",
	Long:  `Updates the given fields of a menu item. Flags that are not set keep their current values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		in := sdk.UpdateMenuItemInput{
			Name:        updateName,
			Description: updateDescription,
			Category:    updateCategory,
		}
		if cobraCmd.Flags().Changed("price") {
			price, err := decimal.NewFromString(updatePrice)
			if err != nil {
				return fmt.Errorf("invalid --price %q: %w", updatePrice, err)
			}
			in.Price = &price
		}
		if cobraCmd.Flags().Changed("available") {
			in.Available = &updateAvailable
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		item, err := mesaClient.UpdateMenuItem(ctx, args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update menu item: %w", err)
		}

		pterm.Success.Printf("Updated menu item %s\n", item.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Item name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Item description")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "Item category")
	updateCmd.Flags().StringVar(&updatePrice, "price", "", "Item price, decimal")
	updateCmd.Flags().BoolVar(&updateAvailable, "available", true, "Whether the item is orderable")
}
