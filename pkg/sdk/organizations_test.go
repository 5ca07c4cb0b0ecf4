package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaops/mesa/pkg/sdk"
)

func TestSwitchToActiveOrganizationIsNoOp(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := loggedInClient(t, srv.URL)
	u, err := c.SwitchOrganization(context.Background(), "org1")
	require.NoError(t, err)
	assert.Equal(t, "org1", u.Organization.ID)
	assert.Equal(t, int32(0), hits.Load(), "switching to the active tenant issues no request")
}

func TestSwitchOrganizationUpdatesSessionAndFlushesCache(t *testing.T) {
	switched := testUser(sdk.RoleOwner)
	switched.Organization = sdk.OrganizationRef{ID: "org2", Name: "Cafe Two", SerialNumber: "ORG000002"}
	// Server-held permissions win over whatever the client had cached.
	switched.Role = sdk.RoleOwner

	var menuHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/menu", func(w http.ResponseWriter, r *http.Request) {
		menuHits.Add(1)
		json.NewEncoder(w).Encode([]sdk.MenuItem{})
	})
	mux.HandleFunc("/api/organizations/switch", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "org2", body["organizationId"])
		json.NewEncoder(w).Encode(map[string]any{"user": switched})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	durable := sdk.NewMemStore()
	require.NoError(t, durable.Save(sdk.Session{User: testUser(sdk.RoleOwner), Token: testToken}))
	c := sdk.New(srv.URL, sdk.WithDurableStore(durable))
	ctx := context.Background()

	// Prime the cache with tenant-scoped data.
	_, err := c.ListMenuItems(ctx, sdk.ListMenuItemsOptions{})
	require.NoError(t, err)
	require.Equal(t, int32(1), menuHits.Load())

	u, err := c.SwitchOrganization(ctx, "org2")
	require.NoError(t, err)
	assert.Equal(t, "org2", u.Organization.ID)

	// The session reflects the new tenant, token unchanged, durably too.
	sess := c.Session()
	require.NotNil(t, sess.User)
	assert.Equal(t, "org2", sess.User.Organization.ID)
	assert.Equal(t, testToken, sess.Token)
	persisted, err := durable.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted.User)
	assert.Equal(t, "org2", persisted.User.Organization.ID)

	// No tenant-scoped cache entry survives the switch.
	_, err = c.ListMenuItems(ctx, sdk.ListMenuItemsOptions{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), menuHits.Load(), "old tenant's menu must not be served")
}

func TestSwitchOrganizationFailureLeavesStateIntact(t *testing.T) {
	var menuHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/menu", func(w http.ResponseWriter, r *http.Request) {
		menuHits.Add(1)
		json.NewEncoder(w).Encode([]sdk.MenuItem{})
	})
	mux.HandleFunc("/api/organizations/switch", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "not a member of that organization"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := loggedInClient(t, srv.URL)
	ctx := context.Background()
	_, err := c.ListMenuItems(ctx, sdk.ListMenuItemsOptions{})
	require.NoError(t, err)

	_, err = c.SwitchOrganization(ctx, "org-other")
	require.Error(t, err)
	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	// Session and cache untouched on failure.
	assert.Equal(t, "org1", c.Session().User.Organization.ID)
	_, err = c.ListMenuItems(ctx, sdk.ListMenuItemsOptions{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), menuHits.Load())
}

func TestSwitchOrganizationRequiresID(t *testing.T) {
	c := sdk.New("http://127.0.0.1:0")
	_, err := c.SwitchOrganization(context.Background(), "")
	require.Error(t, err)
}

func TestOrganizationRefAcceptsBareIDOrObject(t *testing.T) {
	var bare sdk.OrganizationRef
	require.NoError(t, json.Unmarshal([]byte(`"org1"`), &bare))
	assert.Equal(t, "org1", bare.ID)
	assert.False(t, bare.Populated())

	var populated sdk.OrganizationRef
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"org1","name":"Cafe One","serialNumber":"ORG000001"}`), &populated))
	assert.Equal(t, "org1", populated.ID)
	assert.Equal(t, "Cafe One", populated.Name)
	assert.True(t, populated.Populated())

	var empty sdk.OrganizationRef
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.Empty(t, empty.ID)
}
