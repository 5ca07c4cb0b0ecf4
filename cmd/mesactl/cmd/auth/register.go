package auth

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/pkg/sdk"
)

var registerIn sdk.RegisterInput

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an owner account and a new organization",
	Long: `Registers a new organization together with its owner account and logs the
session in. When --serial is omitted the server assigns the next free serial
number automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mesaClient, err := sdkClient(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		user, err := mesaClient.Register(ctx, registerIn)
		if err != nil {
			return err
		}

		pterm.Success.Printf("Registration successful for %s\n", user.Email)
		pterm.Info.Printf("Organization %s assigned serial %s\n",
			user.Organization.Name, user.Organization.SerialNumber)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerIn.Name, "name", "", "Owner display name")
	registerCmd.Flags().StringVar(&registerIn.Email, "email", "", "Owner email")
	registerCmd.Flags().StringVar(&registerIn.Password, "password", "", "Owner password")
	registerCmd.Flags().StringVar(&registerIn.ConfirmPassword, "confirm-password", "", "Password confirmation")
	registerCmd.Flags().StringVar(&registerIn.OrganizationName, "org-name", "", "Organization name")
	registerCmd.Flags().StringVar(&registerIn.SerialNumber, "serial", "", "Organization serial (server-assigned when omitted)")
	registerCmd.Flags().StringVar(&registerIn.Phone, "phone", "", "Organization phone")
	registerCmd.Flags().StringVar(&registerIn.Address, "address", "", "Organization address")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("confirm-password")
	_ = registerCmd.MarkFlagRequired("org-name")
}
