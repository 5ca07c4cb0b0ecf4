package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/cmd/analytics"
	"github.com/mesaops/mesa/cmd/mesactl/cmd/auth"
	"github.com/mesaops/mesa/cmd/mesactl/cmd/inventory"
	"github.com/mesaops/mesa/cmd/mesactl/cmd/menu"
	"github.com/mesaops/mesa/cmd/mesactl/cmd/org"
	"github.com/mesaops/mesa/cmd/mesactl/cmd/orders"
	"github.com/mesaops/mesa/cmd/mesactl/cmd/salary"
	"github.com/mesaops/mesa/cmd/mesactl/cmd/sales"
	"github.com/mesaops/mesa/cmd/mesactl/cmd/staff"
	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "mesactl",
	Short: "Mesa CLI - restaurant management client",
	Long: `mesactl is the command-line interface for Mesa, a multi-tenant restaurant
management system. Use it to manage menus, inventory, orders, staff, salaries,
sales reports and organizations against a Mesa API server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envCfg, err := config.LoadEnv()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("server") && envCfg.APIURL != "" {
			serverURL = envCfg.APIURL
		}
		if envCfg.NonInteractive {
			nonInteractive = true
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			Provider:       client.NewProvider(serverURL),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, sdk.ErrSessionExpired) {
			fmt.Fprintln(os.Stderr, "session expired; run `mesactl auth login`")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", sdk.DefaultBaseURL, "Mesa API server URL (also via MESA_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via MESA_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(menu.MenuCmd)
	rootCmd.AddCommand(inventory.InventoryCmd)
	rootCmd.AddCommand(orders.OrdersCmd)
	rootCmd.AddCommand(staff.StaffCmd)
	rootCmd.AddCommand(salary.SalaryCmd)
	rootCmd.AddCommand(sales.SalesCmd)
	rootCmd.AddCommand(analytics.AnalyticsCmd)
	rootCmd.AddCommand(org.OrgCmd)
}
