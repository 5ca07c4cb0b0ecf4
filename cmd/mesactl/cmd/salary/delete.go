package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <salary-id>",
	Short: "Delete a salary record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := editClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := mesaClient.DeleteSalary(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete salary record: %w", err)
		}

		pterm.Success.Printf("Deleted salary record %s\n", args[0])
		return nil
	},
}
