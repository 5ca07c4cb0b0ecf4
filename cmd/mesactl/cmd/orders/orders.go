package orders

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// OrdersCmd is the parent command for order management.
var OrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
	Long:  `Commands for placing, listing, updating and cancelling orders.`,
}

func init() {
	OrdersCmd.AddCommand(listCmd)
	OrdersCmd.AddCommand(getCmd)
	OrdersCmd.AddCommand(createCmd)
	OrdersCmd.AddCommand(updateCmd)
	OrdersCmd.AddCommand(deleteCmd)
}

func viewClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireView(ctx, c, sdk.ModuleOrders); err != nil {
		return nil, err
	}
	return c, nil
}

func editClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireEdit(ctx, c, sdk.ModuleOrders); err != nil {
		return nil, err
	}
	return c, nil
}
