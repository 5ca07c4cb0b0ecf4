package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	summaryFrom string
	summaryTo   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate sales for a window",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		window, err := parseWindow(summaryFrom, summaryTo)
		if err != nil {
			return err
		}

		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		summary, err := mesaClient.SalesSummary(ctx, window)
		if err != nil {
			return fmt.Errorf("failed to fetch sales summary: %w", err)
		}

		pterm.DefaultSection.Println("Sales Summary")
		fmt.Printf("Total revenue:  %s\n", summary.TotalRevenue.StringFixed(2))
		fmt.Printf("Total orders:   %d\n", summary.TotalOrders)
		fmt.Printf("Average order:  %s\n", summary.AverageOrder.StringFixed(2))
		if summary.BestDay != "" {
			fmt.Printf("Best day:       %s (%s)\n", summary.BestDay, summary.BestDayAmount.StringFixed(2))
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFrom, "from", "", "Start date, YYYY-MM-DD")
	summaryCmd.Flags().StringVar(&summaryTo, "to", "", "End date, YYYY-MM-DD")
}
