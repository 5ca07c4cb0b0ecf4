package salary

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// SalaryCmd is the parent command for payroll records.
var SalaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Manage salary records",
	Long:  `Commands for recording and reviewing monthly staff pay.`,
}

func init() {
	SalaryCmd.AddCommand(listCmd)
	SalaryCmd.AddCommand(getCmd)
	SalaryCmd.AddCommand(createCmd)
	SalaryCmd.AddCommand(updateCmd)
	SalaryCmd.AddCommand(deleteCmd)
}

func viewClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireView(ctx, c, sdk.ModuleSalary); err != nil {
		return nil, err
	}
	return c, nil
}

func editClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireEdit(ctx, c, sdk.ModuleSalary); err != nil {
		return nil, err
	}
	return c, nil
}
