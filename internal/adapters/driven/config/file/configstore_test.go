package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkbabb/sheetrange/internal/connectors/google/sheets"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("test_key", "test_value")
	require.NoError(t, err)

	val, ok := store.Get("test_key")
	assert.True(t, ok)
	assert.Equal(t, "test_value", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeySpreadsheet, "abc123"))
	require.NoError(t, store.Set(KeyBatchSize, 25))

	// A fresh store over the same directory sees the persisted values
	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reopened.SpreadsheetID())
	assert.Equal(t, 25, reopened.BatchSize())
}

func TestConfigStore_TypedDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "", store.CredentialsPath())
	assert.Equal(t, sheets.DefaultThrottleInterval, store.ThrottleInterval())
	assert.Equal(t, sheets.DefaultBatchSize, store.BatchSize())

	require.NoError(t, store.Set(KeyThrottleMillis, 250))
	assert.Equal(t, 250*time.Millisecond, store.ThrottleInterval())
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[google]\ncredentials = \"/tmp/creds.json\"\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/creds.json", store.GetString("google.credentials"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("n", 42))
	assert.Equal(t, 42, store.GetInt("n"))

	require.NoError(t, store.Set("s", "not a number"))
	assert.Equal(t, 0, store.GetInt("s"))
}
