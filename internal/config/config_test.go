package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikidot-applications-deleter/internal/logger"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Load(""))

	assert.True(t, AppConfig.Headless)
	assert.Equal(t, 100, AppConfig.BatchSize)
	assert.Equal(t, 1500*time.Millisecond, AppConfig.BatchDelay)
	assert.Equal(t, "https://www.wikidot.com/account/messages", AppConfig.MessagesURL)
	assert.Equal(t, "browser_data", filepath.Base(AppConfig.UserDataDir))
	assert.Empty(t, AppConfig.EmailAlertTo)
}

func TestLoadExplicitFile(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
user_data_dir: /tmp/profile
headless: false
batch_size: 50
batch_delay: 2s
email_alert_to: me@example.com
`), 0o600))

	require.NoError(t, Load(path))

	assert.Equal(t, "/tmp/profile", AppConfig.UserDataDir)
	assert.False(t, AppConfig.Headless)
	assert.Equal(t, 50, AppConfig.BatchSize)
	assert.Equal(t, 2*time.Second, AppConfig.BatchDelay)
	assert.Equal(t, "me@example.com", AppConfig.EmailAlertTo)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	viper.Reset()

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
