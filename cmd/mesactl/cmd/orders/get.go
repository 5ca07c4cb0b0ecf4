package orders

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		order, err := mesaClient.GetOrder(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		pterm.DefaultSection.Printf("Order %s\n", order.ID)
		fmt.Printf("Table:  %d\n", order.TableNumber)
		fmt.Printf("Status: %s\n", order.Status)
		fmt.Printf("Total:  %s\n", order.TotalAmount.StringFixed(2))
		if !order.CreatedAt.IsZero() {
			fmt.Printf("Placed: %s\n", order.CreatedAt.Format(time.RFC1123))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ITEM\tNAME\tQTY\tPRICE")
		for _, line := range order.Items {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				line.MenuItemID, line.Name, line.Quantity, line.Price.StringFixed(2))
		}
		w.Flush()
		return nil
	},
}
