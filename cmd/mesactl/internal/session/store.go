package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesaops/mesa/pkg/sdk"
)

const sessionFile = "session.json"

// FileStore implements sdk.SessionStore using a JSON file under ~/.mesa.
// This is the CLI's durable session persistence: one fixed slot, last
// writer wins across concurrent invocations.
type FileStore struct {
	path string
}

var _ sdk.SessionStore = (*FileStore)(nil)

// NewFileStore creates the ~/.mesa directory when needed and returns a
// store bound to the session file inside it.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	mesaDir := filepath.Join(home, ".mesa")
	if err := os.MkdirAll(mesaDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create .mesa directory: %w", err)
	}
	return &FileStore{path: filepath.Join(mesaDir, sessionFile)}, nil
}

// NewFileStoreAt binds the store to an explicit path, mainly for tests.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted session. A missing file is not an error; it
// yields a zero session (logged out).
func (s *FileStore) Load() (sdk.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return sdk.Session{}, nil
		}
		return sdk.Session{}, fmt.Errorf("failed to read session file: %w", err)
	}
	var sess sdk.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return sdk.Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess, nil
}

// Save writes the session with owner-only permissions.
func (s *FileStore) Save(sess sdk.Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear deletes the session file. Clearing an absent file is a no-op.
func (s *FileStore) Clear() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}
