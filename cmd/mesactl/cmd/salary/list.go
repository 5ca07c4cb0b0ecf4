package salary

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	listMonth int
	listYear  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List salary records",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		records, err := mesaClient.ListSalaries(ctx, sdk.ListSalariesOptions{Month: listMonth, Year: listYear})
		if err != nil {
			return fmt.Errorf("failed to list salaries: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTAFF\tPERIOD\tAMOUNT\tBONUS\tDEDUCTIONS\tNET\tSTATUS")
		for _, r := range records {
			staffName := r.Staff.Name
			if staffName == "" {
				staffName = r.Staff.ID
			}
			fmt.Fprintf(w, "%s\t%s\t%02d/%d\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, staffName, r.Month, r.Year,
				r.Amount.StringFixed(2), r.Bonus.StringFixed(2),
				r.Deductions.StringFixed(2), r.Net().StringFixed(2), r.Status)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listMonth, "month", 0, "Filter by month (1-12)")
	listCmd.Flags().IntVar(&listYear, "year", 0, "Filter by year")
}
