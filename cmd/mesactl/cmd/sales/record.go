package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	recordDate   string
	recordTotal  string
	recordOrders int
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a manual daily sales entry",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		total, err := decimal.NewFromString(recordTotal)
		if err != nil {
			return fmt.Errorf("invalid --total %q: %w", recordTotal, err)
		}
		if _, err := time.Parse("2006-01-02", recordDate); err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", recordDate, err)
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		record, err := mesaClient.RecordDailySales(ctx, sdk.DailySalesInput{
			Date:       recordDate,
			TotalSales: total,
			OrderCount: recordOrders,
		})
		if err != nil {
			return fmt.Errorf("failed to record daily sales: %w", err)
		}

		pterm.Success.Printf("Recorded sales for %s: %s across %d orders\n",
			record.Date, record.TotalSales.StringFixed(2), record.OrderCount)
		return nil
	},
}

func init() {
	recordCmd.Flags().StringVar(&recordDate, "date", "", "Sales date, YYYY-MM-DD")
	recordCmd.Flags().StringVar(&recordTotal, "total", "0", "Total sales, decimal")
	recordCmd.Flags().IntVar(&recordOrders, "orders", 0, "Number of orders")
	_ = recordCmd.MarkFlagRequired("date")
	_ = recordCmd.MarkFlagRequired("total")
}
