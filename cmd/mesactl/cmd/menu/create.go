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
	createName        string
	createDescription string
	createCategory    string
	createPrice       string
	createAvailable   bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a menu item",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		price, err := decimal.NewFromString(createPrice)
		if err != nil {
			return fmt.Errorf("invalid --price %q: %w", createPrice, err)
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		item, err := mesaClient.CreateMenuItem(ctx, sdk.CreateMenuItemInput{
			Name:        createName,
			Description: createDescription,
			Category:    createCategory,
			Price:       price,
			Available:   createAvailable,
		})
		if err != nil {
			return fmt.Errorf("failed to create menu item: %w", err)
		}

		pterm.Success.Printf("Created menu item %s (%s)\n", item.Name, item.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Item name")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Item description")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Item category")
	createCmd.Flags().StringVar(&createPrice, "price", "0", "Item price, decimal")
	createCmd.Flags().BoolVar(&createAvailable, "available", true, "Whether the item is orderable")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("price")
}
