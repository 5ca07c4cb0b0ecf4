package org

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
	"github.com/mesaops/mesa/cmd/mesactl/internal/config"
	"github.com/mesaops/mesa/pkg/sdk"
)

// OrgCmd is the parent command for tenant management. Every subcommand is
// owner-only.
var OrgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
	Long:  `Commands for creating, updating and switching between organizations.`,
}

func init() {
	OrgCmd.AddCommand(listCmd)
	OrgCmd.AddCommand(getCmd)
	OrgCmd.AddCommand(createCmd)
	OrgCmd.AddCommand(updateCmd)
	OrgCmd.AddCommand(switchCmd)
	OrgCmd.AddCommand(staffCmd)
	OrgCmd.AddCommand(serialCmd)
}

func ownerClient(ctx context.Context) (*sdk.Client, error) {
	c, err := config.MustFromContext(ctx).Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.RequireOwner(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
