package menu

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	listCategory  string
	listAvailable bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu items",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		opts := sdk.ListMenuItemsOptions{Category: listCategory}
		if cobraCmd.Flags().Changed("available") {
			opts.Available = &listAvailable
		}
		items, err := mesaClient.ListMenuItems(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to list menu items: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tAVAILABLE")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
				item.ID, item.Name, item.Category, item.Price.StringFixed(2), item.Available)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().BoolVar(&listAvailable, "available", false, "Filter by availability")
}
