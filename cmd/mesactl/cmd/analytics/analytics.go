package analytics

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// AnalyticsCmd is the parent command for dashboard metrics and charts.
var AnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "View dashboard analytics",
	Long:  `Commands for viewing aggregated business metrics and revenue charts.`,
}

func init() {
	AnalyticsCmd.AddCommand(dashboardCmd)
	AnalyticsCmd.AddCommand(revenueCmd)
}

func viewClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireView(ctx, c, sdk.ModuleAnalytics); err != nil {
		return nil, err
	}
	return c, nil
}

// authedClient requires only a logged-in identity. The dashboard is visible
// to every authenticated user regardless of module permissions.
func authedClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := c.CurrentUser(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
