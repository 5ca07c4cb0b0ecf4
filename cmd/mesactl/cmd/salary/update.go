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
	updateAmount     string
	updateBonus      string
	updateDeductions string
	updateStatus     string
)

var updateCmd = &cobra.Command{
	Use:   "update <salary-id>",
	Short: "Update a salary record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		in := sdk.UpdateSalaryInput{Status: updateStatus}
		if cobraCmd.Flags().Changed("amount") {
			amount, err := decimal.NewFromString(updateAmount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", updateAmount, err)
			}
			in.Amount = &amount
		}
		if cobraCmd.Flags().Changed("bonus") {
			bonus, err := decimal.NewFromString(updateBonus)
			if err != nil {
				return fmt.Errorf("invalid --bonus %q: %w", updateBonus, err)
			}
			in.Bonus = &bonus
		}
		if cobraCmd.Flags().Changed("deductions") {
			deductions, err := decimal.NewFromString(updateDeductions)
			if err != nil {
				return fmt.Errorf("invalid --deductions %q: %w", updateDeductions, err)
			}
			in.Deductions = &deductions
		}

		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		record, err := mesaClient.UpdateSalary(ctx, args[0], in)
		if err != nil {
			return fmt.Errorf("failed to update salary record: %w", err)
		}

		pterm.Success.Printf("Updated salary record %s (net %s)\n", record.ID, record.Net().StringFixed(2))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateAmount, "amount", "", "Base amount, decimal")
	updateCmd.Flags().StringVar(&updateBonus, "bonus", "", "Bonus, decimal")
	updateCmd.Flags().StringVar(&updateDeductions, "deductions", "", "Deductions, decimal")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "Record status (pending, paid)")
}
