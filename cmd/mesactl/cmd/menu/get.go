package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		item, err := mesaClient.GetMenuItem(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get menu item: %w", err)
		}

		pterm.DefaultSection.Println(item.Name)
		fmt.Printf("ID:          %s\n", item.ID)
		fmt.Printf("Category:    %s\n", item.Category)
		fmt.Printf("Price:       %s\n", item.Price.StringFixed(2))
		fmt.Printf("Available:   %t\n", item.Available)
		if item.Description != "" {
			fmt.Printf("Description: %s\n", item.Description)
		}
		return nil
	},
}
