package inventory

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory items",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		items, err := mesaClient.ListInventory(ctx, sdk.ListInventoryOptions{Category: listCategory})
		if err != nil {
			return fmt.Errorf("failed to list inventory: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tQUANTITY\tUNIT\tMIN\tCOST/UNIT")
		for _, item := range items {
			qty := item.Quantity.String()
			if item.LowStock() {
				qty += " (low)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				item.ID, item.Name, item.Category, qty, item.Unit,
				item.MinQuantity.String(), item.CostPerUnit.StringFixed(2))
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
}
