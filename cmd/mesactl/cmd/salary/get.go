package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one salary record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		r, err := mesaClient.GetSalary(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get salary record: %w", err)
		}

		pterm.DefaultSection.Printf("Salary %02d/%d\n", r.Month, r.Year)
		staffName := r.Staff.Name
		if staffName == "" {
			staffName = r.Staff.ID
		}
		fmt.Printf("Staff:      %s\n", staffName)
		fmt.Printf("Amount:     %s\n", r.Amount.StringFixed(2))
		fmt.Printf("Bonus:      %s\n", r.Bonus.StringFixed(2))
		fmt.Printf("Deductions: %s\n", r.Deductions.StringFixed(2))
		fmt.Printf("Net:        %s\n", r.Net().StringFixed(2))
		fmt.Printf("Status:     %s\n", r.Status)
		return nil
	},
}
