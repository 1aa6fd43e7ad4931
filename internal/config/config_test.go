package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/contacts/internal/contact"
)

// TestDefaultConfig verifies the built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "addressbook.json", cfg.DataFile)
	assert.Equal(t, 7, cfg.Birthdays.WindowDays)
	assert.Equal(t, "mar1", cfg.Birthdays.LeapDay)
	assert.True(t, cfg.Color)
	assert.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
data_file: /tmp/book.yaml
birthdays:
  window_days: 10
  leap_day: feb28
log:
  level: debug
color: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/book.yaml", cfg.DataFile)
	assert.Equal(t, 10, cfg.Birthdays.WindowDays)
	assert.Equal(t, contact.LeapDayFeb28, cfg.LeapDayPolicy())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Color)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CONTACTS_BIRTHDAYS_WINDOW_DAYS", "3")
	t.Setenv("BOOK_DIR", "/srv/contacts")
	path := writeConfig(t, "data_file: $BOOK_DIR/book.json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Birthdays.WindowDays)
	assert.Equal(t, "/srv/contacts/book.json", cfg.DataFile)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Birthdays.LeapDay = "never"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Birthdays.WindowDays = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 7, cfg.Birthdays.WindowDays)
}
