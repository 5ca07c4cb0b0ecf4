package orders

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
	listStatus string
	listFrom   string
	listTo     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		opts := sdk.ListOrdersOptions{Status: listStatus}
		var err error
		if opts.From, err = parseDateFlag(listFrom); err != nil {
			return err
		}
		if opts.To, err = parseDateFlag(listTo); err != nil {
			return err
		}

		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		orderList, err := mesaClient.ListOrders(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER\tTABLE\tITEMS\tSTATUS\tTOTAL")
		for _, o := range orderList {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
				o.ID, o.OrderNumber, o.TableNumber, len(o.Items), o.Status, o.TotalAmount.StringFixed(2))
		}
		w.Flush()
		return nil
	},
}

func parseDateFlag(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", v, err)
	}
	return t, nil
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, preparing, ready, served, cancelled)")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Start date, YYYY-MM-DD")
	listCmd.Flags().StringVar(&listTo, "to", "", "End date, YYYY-MM-DD")
}
