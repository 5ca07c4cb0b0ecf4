package menu

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// MenuCmd is the parent command for menu management.
var MenuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage the menu",
	Long:  `Commands for listing, creating, updating and deleting menu items.`,
}

func init() {
	MenuCmd.AddCommand(listCmd)
	MenuCmd.AddCommand(getCmd)
	MenuCmd.AddCommand(createCmd)
	MenuCmd.AddCommand(updateCmd)
	MenuCmd.AddCommand(deleteCmd)
}

func viewClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireView(ctx, c, sdk.ModuleMenu); err != nil {
		return nil, err
	}
	return c, nil
}

func editClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireEdit(ctx, c, sdk.ModuleMenu); err != nil {
		return nil, err
	}
	return c, nil
}
