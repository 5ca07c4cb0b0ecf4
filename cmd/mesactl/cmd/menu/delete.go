package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := mesaClient.DeleteMenuItem(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete menu item: %w", err)
		}
		pterm.Success.Printf("Deleted menu item %s\n", args[0])
		return nil
	},
}
