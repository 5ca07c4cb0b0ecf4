package inventory

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var lowStockCmd = &cobra.Command{
	Use:   "lowstock",
	Short: "List items at or below their minimum quantity",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		items, err := mesaClient.LowStockAlerts(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch low-stock alerts: %w", err)
		}
		if len(items) == 0 {
			pterm.Success.Println("No items below minimum stock")
			return nil
		}

		pterm.Warning.Printf("%d item(s) below minimum stock\n", len(items))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tQUANTITY\tMIN\tUNIT")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				item.ID, item.Name, item.Quantity.String(), item.MinQuantity.String(), item.Unit)
		}
		w.Flush()
		return nil
	},
}
