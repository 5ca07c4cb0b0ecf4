package sdk_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaops/mesa/pkg/sdk"
)

func TestNormalizeSerial(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"org000001", "ORG000001"},
		{"  ORG000002 ", "ORG000002"},
		{"Org000003", "ORG000003"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sdk.NormalizeSerial(tc.in))
	}
}

func TestLoginNormalizesSerialAndStoresSession(t *testing.T) {
	var gotBody atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a stale token")
		body, _ := io.ReadAll(r.Body)
		gotBody.Store(body)
		json.NewEncoder(w).Encode(map[string]any{
			"token": testToken,
			"user":  testUser(sdk.RoleOwner),
		})
	}))
	defer srv.Close()

	durable := sdk.NewMemStore()
	c := sdk.New(srv.URL, sdk.WithDurableStore(durable))

	u, err := c.Login(context.Background(), sdk.LoginInput{
		Email:              "ada@example.com",
		Password:           "secret1",
		OrganizationSerial: "org000001",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(gotBody.Load().([]byte), &sent))
	assert.Equal(t, "ORG000001", sent["organizationSerial"], "serial is uppercased before submission")

	sess := c.Session()
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, testToken, sess.Token)

	persisted, err := durable.Load()
	require.NoError(t, err)
	assert.Equal(t, testToken, persisted.Token, "login is mirrored to the durable store")
}

func TestLoginRejectionSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))
	defer srv.Close()

	c := sdk.New(srv.URL)
	_, err := c.Login(context.Background(), sdk.LoginInput{
		Email:              "ada@example.com",
		Password:           "wrong-password",
		OrganizationSerial: "ORG000001",
	})
	require.Error(t, err)

	// A rejected login is not an expired session; the caller gets the
	// server's reason verbatim.
	assert.NotErrorIs(t, err, sdk.ErrSessionExpired)
	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestLoginValidationIssuesNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := sdk.New(srv.URL)
	cases := []sdk.LoginInput{
		{Email: "not-an-email", Password: "secret1", OrganizationSerial: "ORG000001"},
		{Email: "ada@example.com", Password: "short", OrganizationSerial: "ORG000001"},
		{Email: "ada@example.com", Password: "secret1"}, // missing serial
	}
	for _, in := range cases {
		_, err := c.Login(context.Background(), in)
		assert.Error(t, err)
	}
	assert.Equal(t, int32(0), hits.Load(), "invalid input must fail before the wire")
}

func TestRegisterOmitsEmptySerialFromBody(t *testing.T) {
	var gotBody atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		gotBody.Store(body)
		json.NewEncoder(w).Encode(map[string]any{
			"token": testToken,
			"user":  testUser(sdk.RoleOwner),
		})
	}))
	defer srv.Close()

	c := sdk.New(srv.URL)
	_, err := c.Register(context.Background(), sdk.RegisterInput{
		Name:             "Ada",
		Email:            "ada@example.com",
		Password:         "secret1",
		ConfirmPassword:  "secret1",
		OrganizationName: "Cafe One",
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(gotBody.Load().([]byte), &sent))
	_, present := sent["serialNumber"]
	assert.False(t, present, "empty serial must be absent, not empty string, so the server auto-assigns")
	_, present = sent["confirmPassword"]
	assert.False(t, present, "confirmation is client-side only")
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := sdk.New(srv.URL)
	_, err := c.Register(context.Background(), sdk.RegisterInput{
		Name:             "Ada",
		Email:            "ada@example.com",
		Password:         "secret1",
		ConfirmPassword:  "secret2",
		OrganizationName: "Cafe One",
	})
	require.Error(t, err)
	assert.Equal(t, int32(0), hits.Load())
}

func TestLogoutClearsSessionAndCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode([]sdk.MenuItem{})
	}))
	defer srv.Close()

	durable := sdk.NewMemStore()
	require.NoError(t, durable.Save(sdk.Session{User: testUser(sdk.RoleOwner), Token: testToken}))
	c := sdk.New(srv.URL, sdk.WithDurableStore(durable))

	_, err := c.ListMenuItems(context.Background(), sdk.ListMenuItemsOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, c.Cache().Len())

	c.Logout()

	assert.False(t, c.Session().IsAuthenticated())
	persisted, err := durable.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted.Token)
	assert.Equal(t, 0, c.Cache().Len(), "no cached data may outlive the session")
	assert.Equal(t, int32(1), hits.Load(), "logout itself is purely local")
}
