package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesaops/mesa/pkg/sdk"
)

func TestLoadBeforeSaveYieldsZeroSession(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "session.json"))

	sess, err := store.Load()
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Token)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStoreAt(path)

	in := sdk.Session{
		User: &sdk.User{
			ID:    "u1",
			Name:  "Ada",
			Email: "ada@example.com",
			Role:  sdk.RoleOwner,
			Organization: sdk.OrganizationRef{
				ID:           "org1",
				SerialNumber: "ORG000001",
			},
		},
		Token: "token-abc",
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.True(t, out.IsAuthenticated())
	assert.Equal(t, "token-abc", out.Token)
	require.NotNil(t, out.User)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, sdk.RoleOwner, out.User.Role)
	assert.Equal(t, "ORG000001", out.User.Organization.SerialNumber)
}

func TestSessionFileIsOwnerOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStoreAt(path)
	require.NoError(t, store.Save(sdk.Session{Token: "secret"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStoreAt(path)

	require.NoError(t, store.Clear(), "clearing an absent file is fine")

	require.NoError(t, store.Save(sdk.Session{Token: "t"}))
	require.NoError(t, store.Clear())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Clear())
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewFileStoreAt(path)
	_, err := store.Load()
	assert.Error(t, err)
}
