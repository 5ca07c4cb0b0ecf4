package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/mesaops/mesa/cmd/mesactl/internal/session"
	"github.com/mesaops/mesa/pkg/sdk"
)

const userAgent = "mesactl"

// Provider yields the shared SDK client lazily, backed by the durable
// session store so a persisted token is rehydrated before the first call.
type Provider struct {
	serverURL string

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error
}

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string) *Provider {
	return &Provider{serverURL: serverURL}
}

// SDKClient returns the process-wide SDK client, constructing it on first use.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		store, err := session.NewFileStore()
		if err != nil {
			p.sdkErr = fmt.Errorf("failed to create session store: %w", err)
			return
		}
		p.sdkClient = sdk.New(p.serverURL,
			sdk.WithDurableStore(store),
			sdk.WithUserAgent(userAgent),
		)
	})
	if p.sdkErr != nil {
		return nil, p.sdkErr
	}
	return p.sdkClient, nil
}

// RequireView resolves the session identity and refuses before any request
// is issued when the user cannot view the module. Owners and admins pass
// unconditionally.
func RequireView(ctx context.Context, c *sdk.Client, m sdk.Module) (*sdk.User, error) {
	u, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !sdk.CanView(u, m) {
		return nil, fmt.Errorf("you do not have permission to view %s", m)
	}
	return u, nil
}

// RequireEdit is RequireView for mutating commands.
func RequireEdit(ctx context.Context, c *sdk.Client, m sdk.Module) (*sdk.User, error) {
	u, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !sdk.CanEdit(u, m) {
		return nil, fmt.Errorf("you do not have permission to edit %s", m)
	}
	return u, nil
}

// RequireOwner gates tenant management on the owner role alone.
func RequireOwner(ctx context.Context, c *sdk.Client) (*sdk.User, error) {
	u, err := c.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !sdk.CanManageOrganizations(u) {
		return nil, fmt.Errorf("organization management requires the owner role")
	}
	return u, nil
}
