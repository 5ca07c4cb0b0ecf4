package analytics

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var revenuePeriod string

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Show the revenue chart buckets",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		points, err := mesaClient.RevenueChart(ctx, sdk.RevenueChartOptions{Period: revenuePeriod})
		if err != nil {
			return fmt.Errorf("failed to fetch revenue chart: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tREVENUE\tORDERS")
		for _, p := range points {
			fmt.Fprintf(w, "%s\t%s\t%d\n", p.Date, p.Revenue.StringFixed(2), p.Orders)
		}
		w.Flush()
		return nil
	},
}

func init() {
	revenueCmd.Flags().StringVar(&revenuePeriod, "period", "", "Bucketing period (daily, weekly, monthly)")
}
