package inventory

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// InventoryCmd is the parent command for stock management.
var InventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage inventory",
	Long:  `Commands for tracking stocked ingredients and supplies, including low-stock alerts.`,
}

func init() {
	InventoryCmd.AddCommand(listCmd)
	InventoryCmd.AddCommand(getCmd)
	InventoryCmd.AddCommand(lowStockCmd)
	InventoryCmd.AddCommand(createCmd)
	InventoryCmd.AddCommand(updateCmd)
	InventoryCmd.AddCommand(deleteCmd)
}

func viewClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireView(ctx, c, sdk.ModuleInventory); err != nil {
		return nil, err
	}
	return c, nil
}

func editClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireEdit(ctx, c, sdk.ModuleInventory); err != nil {
		return nil, err
	}
	return c, nil
}
