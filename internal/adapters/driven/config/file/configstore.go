package file

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/mkbabb/sheetrange/internal/connectors/google/sheets"
	"github.com/mkbabb/sheetrange/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Well-known configuration keys.
const (
	// KeyCredentials is the path to the Google credentials JSON file.
	KeyCredentials = "credentials"
	// KeySpreadsheet is the default spreadsheet ID.
	KeySpreadsheet = "spreadsheet"
	// KeyThrottleMillis is the minimum spacing between API calls, in ms.
	KeyThrottleMillis = "throttle_ms"
	// KeyBatchSize is the pending-range flush threshold.
	KeyBatchSize = "batch_size"
	// KeyAccessToken is a pre-issued OAuth access token, used instead of
	// credentials JSON when set.
	KeyAccessToken = "access_token"
)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Configuration is stored in a TOML file within the sheetrange config
// directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.sheetrange/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".sheetrange")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// CredentialsPath returns the configured Google credentials file path.
func (s *ConfigStore) CredentialsPath() string {
	return s.GetString(KeyCredentials)
}

// SpreadsheetID returns the configured default spreadsheet ID.
func (s *ConfigStore) SpreadsheetID() string {
	return s.GetString(KeySpreadsheet)
}

// AccessToken returns the configured pre-issued OAuth access token, if any.
func (s *ConfigStore) AccessToken() string {
	return s.GetString(KeyAccessToken)
}

// ThrottleInterval returns the configured call spacing, falling back to the
// Sheets client default when unset.
func (s *ConfigStore) ThrottleInterval() time.Duration {
	if ms := s.GetInt(KeyThrottleMillis); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return sheets.DefaultThrottleInterval
}

// BatchSize returns the configured flush threshold, falling back to the
// Sheets client default when unset.
func (s *ConfigStore) BatchSize() int {
	if n := s.GetInt(KeyBatchSize); n > 0 {
		return n
	}
	return sheets.DefaultBatchSize
}

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start empty
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	// Flatten nested maps into dot-notation keys for easier access
	s.data = flattenMap(loaded, "")
	return nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			// Recursively flatten nested maps
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
