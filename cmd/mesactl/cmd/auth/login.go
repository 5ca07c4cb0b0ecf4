package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
	loginSerial   string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Mesa",
	Long: `Authenticates against one organization using email, password and the
organization serial number (e.g. ORG000001; case does not matter, the serial
is uppercased before submission). The session token is stored in
~/.mesa/session.json and reused by subsequent commands until it expires.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		password := loginPassword
		if password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--password is required in non-interactive mode")
			}
			entered, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = entered
		}

		mesaClient, err := sdkClient(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		user, err := mesaClient.Login(ctx, sdk.LoginInput{
			Email:              loginEmail,
			Password:           password,
			OrganizationSerial: loginSerial,
		})
		if err != nil {
			return err
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", user.Name, user.Email)
		if user.Organization.Name != "" {
			pterm.Info.Printf("Active organization: %s [%s]\n", user.Organization.Name, user.Organization.SerialNumber)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginSerial, "org-serial", "", "Organization serial number")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("org-serial")
}
