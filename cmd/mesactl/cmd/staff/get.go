package staff

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one staff member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		mesaClient, err := viewClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		member, err := mesaClient.GetStaffMember(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get staff member: %w", err)
		}

		pterm.DefaultSection.Println(member.Name)
		fmt.Printf("ID:     %s\n", member.ID)
		fmt.Printf("Email:  %s\n", member.Email)
		fmt.Printf("Role:   %s\n", member.Role)
		if member.Status != "" {
			fmt.Printf("Status: %s\n", member.Status)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODULE\tVIEW\tEDIT")
		for _, m := range sdk.Modules() {
			p := member.Permissions[m]
			fmt.Fprintf(w, "%s\t%t\t%t\n", m, p.View, p.Edit)
		}
		w.Flush()
		return nil
	},
}
