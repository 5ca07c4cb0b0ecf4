package auth

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// AuthCmd is the parent command for session management.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Mesa session",
	Long:  `Commands for logging in and out, registering a new organization, and inspecting the current identity.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(passwdCmd)
}

func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.Provider.SDKClient()
}
