package keys

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.KeyStore = (*FileStore)(nil)

// fileKeys is the on-disk TOML shape of the key file.
type fileKeys struct {
	ConsumerKey       string `toml:"consumer_key"`
	ConsumerSecret    string `toml:"consumer_secret"`
	AccessToken       string `toml:"access_token,omitempty"`
	AccessTokenSecret string `toml:"access_token_secret,omitempty"`
}

// FileStore is a TOML-backed implementation of driven.KeyStore.
// Keys are stored in a single file within the plurk data directory.
type FileStore struct {
	mu       sync.Mutex
	filePath string
}

// NewFileStore creates a key store backed by dataDir/keys.toml.
// If dataDir is empty, defaults to ~/.plurk.
func NewFileStore(dataDir string) (*FileStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".plurk")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, err
	}

	return &FileStore{filePath: filepath.Join(dataDir, "keys.toml")}, nil
}

// Load reads the key file. A missing file or a file without a consumer key
// pair yields domain.ErrNoConsumerKeys so callers can tell the user to run
// keys set first.
func (s *FileStore) Load() (domain.Keys, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Keys{}, fmt.Errorf("%w: no key file at %s", domain.ErrNoConsumerKeys, s.filePath)
		}
		return domain.Keys{}, fmt.Errorf("read key file: %w", err)
	}

	var loaded fileKeys
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return domain.Keys{}, fmt.Errorf("parse key file %s: %w", s.filePath, err)
	}

	keys := domain.Keys{
		ConsumerKey:       loaded.ConsumerKey,
		ConsumerSecret:    loaded.ConsumerSecret,
		AccessToken:       loaded.AccessToken,
		AccessTokenSecret: loaded.AccessTokenSecret,
	}
	if !keys.HasConsumer() {
		return domain.Keys{}, fmt.Errorf("%w: %s has no consumer key pair", domain.ErrNoConsumerKeys, s.filePath)
	}
	return keys, nil
}

// Save writes the keys with owner-only permissions.
func (s *FileStore) Save(keys domain.Keys) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(fileKeys{
		ConsumerKey:       keys.ConsumerKey,
		ConsumerSecret:    keys.ConsumerSecret,
		AccessToken:       keys.AccessToken,
		AccessTokenSecret: keys.AccessTokenSecret,
	})
	if err != nil {
		return fmt.Errorf("encode key file: %w", err)
	}

	// Secrets, so restrict permissions.
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

// Path returns the key file path.
func (s *FileStore) Path() string {
	return s.filePath
}
