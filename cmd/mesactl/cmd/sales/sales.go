package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// SalesCmd is the parent command for sales reporting.
var SalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Review sales reports",
	Long:  `Commands for listing sales records, summaries, and manual daily entries.`,
}

func init() {
	SalesCmd.AddCommand(listCmd)
	SalesCmd.AddCommand(summaryCmd)
	SalesCmd.AddCommand(recordCmd)
}

func viewClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireView(ctx, c, sdk.ModuleSales); err != nil {
		return nil, err
	}
	return c, nil
}

func editClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireEdit(ctx, c, sdk.ModuleSales); err != nil {
		return nil, err
	}
	return c, nil
}

func parseWindow(from, to string) (sdk.SalesWindow, error) {
	var w sdk.SalesWindow
	var err error
	if from != "" {
		if w.From, err = time.Parse("2006-01-02", from); err != nil {
			return w, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", from, err)
		}
	}
	if to != "" {
		if w.To, err = time.Parse("2006-01-02", to); err != nil {
			return w, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", to, err)
		}
	}
	return w, nil
}
