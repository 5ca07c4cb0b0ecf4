package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard metrics",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := authedClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		metrics, err := mesaClient.Dashboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch dashboard metrics: %w", err)
		}

		pterm.DefaultSection.Println("Dashboard")
		fmt.Printf("Total revenue:   %s\n", metrics.TotalRevenue.StringFixed(2))
		fmt.Printf("Today's revenue: %s\n", metrics.TodayRevenue.StringFixed(2))
		fmt.Printf("Total orders:    %d\n", metrics.TotalOrders)
		fmt.Printf("Pending orders:  %d\n", metrics.PendingOrders)
		fmt.Printf("Menu items:      %d\n", metrics.MenuItems)
		fmt.Printf("Staff:           %d\n", metrics.StaffCount)
		if metrics.LowStockCount > 0 {
			pterm.Warning.Printf("%d inventory items are low on stock\n", metrics.LowStockCount)
		}
		return nil
	},
}
