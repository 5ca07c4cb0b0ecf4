package sales

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	listFrom string
	listTo   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List daily sales records",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		window, err := parseWindow(listFrom, listTo)
		if err != nil {
			return err
		}

		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		records, err := mesaClient.ListSales(ctx, window)
		if err != nil {
			return fmt.Errorf("failed to list sales: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTOTAL\tORDERS\tAVG ORDER")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				r.ID, r.Date, r.TotalSales.StringFixed(2), r.OrderCount, r.AvgOrderVal.StringFixed(2))
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "Start date, YYYY-MM-DD")
	listCmd.Flags().StringVar(&listTo, "to", "", "End date, YYYY-MM-DD")
}
