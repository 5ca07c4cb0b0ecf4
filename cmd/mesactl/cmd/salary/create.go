package salary

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
	createStaffID    string
	createAmount     string
	createBonus      string
	createDeductions string
	createMonth      int
	createYear       int
	createStatus     string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a salary payment",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(createAmount)
		if err != nil {
			return fmt.Errorf("invalid --amount %q: %w", createAmount, err)
		}
		bonus, err := decimal.NewFromString(createBonus)
		if err != nil {
			return fmt.Errorf("invalid --bonus %q: %w", createBonus, err)
		}
		deductions, err := decimal.NewFromString(createDeductions)
		if err != nil {
			return fmt.Errorf("invalid --deductions %q: %w", createDeductions, err)
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		record, err := mesaClient.CreateSalary(ctx, sdk.CreateSalaryInput{
			StaffID:    createStaffID,
			Amount:     amount,
			Bonus:      bonus,
			Deductions: deductions,
			Month:      createMonth,
			Year:       createYear,
			Status:     createStatus,
		})
		if err != nil {
			return fmt.Errorf("failed to create salary record: %w", err)
		}

		pterm.Success.Printf("Created salary record %s (net %s)\n", record.ID, record.Net().StringFixed(2))
		return nil
	},
}

func init() {
	now := time.Now()
	createCmd.Flags().StringVar(&createStaffID, "staff", "", "Staff member id")
	createCmd.Flags().StringVar(&createAmount, "amount", "0", "Base amount, decimal")
	createCmd.Flags().StringVar(&createBonus, "bonus", "0", "Bonus, decimal")
	createCmd.Flags().StringVar(&createDeductions, "deductions", "0", "Deductions, decimal")
	createCmd.Flags().IntVar(&createMonth, "month", int(now.Month()), "Pay month (1-12)")
	createCmd.Flags().IntVar(&createYear, "year", now.Year(), "Pay year")
	createCmd.Flags().StringVar(&createStatus, "status", "pending", "Record status (pending, paid)")
	_ = createCmd.MarkFlagRequired("staff")
	_ = createCmd.MarkFlagRequired("amount")
}
