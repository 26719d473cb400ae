package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Katos24/crosslist-pro/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalYAML = `
database:
  host: localhost
  name: crosslist
  user: crosslist
ebay:
  app_id: test-app
  cert_id: test-cert
  redirect_uri: Test-RuName
`

func TestLoad_Minimal(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	// Defaults applied.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://api.ebay.com", cfg.Ebay.APIBaseURL)
	assert.Equal(t, "https://api.ebay.com/identity/v1/oauth2/token", cfg.Ebay.TokenURL)
	assert.Equal(t, "EBAY_US", cfg.Ebay.Marketplace)
	assert.Equal(t, "default", cfg.Ebay.Policies.MerchantLocationKey)
	assert.Equal(t, 5.0, cfg.Ebay.RateLimit.PerSecond)
	assert.Equal(t, int64(5000), cfg.Ebay.RateLimit.DailyLimit)
	assert.Equal(t, 15*time.Minute, cfg.Refresh.Interval)
	assert.Equal(t, time.Hour, cfg.Refresh.Window)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("CLX_TEST_CERT", "cert-from-env")

	cfg, err := config.Load(writeConfig(t, `
database:
  host: localhost
  name: crosslist
  user: crosslist
ebay:
  app_id: test-app
  cert_id: ${CLX_TEST_CERT}
  redirect_uri: Test-RuName
`))
	require.NoError(t, err)
	assert.Equal(t, "cert-from-env", cfg.Ebay.CertID)
}

func TestLoad_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		yaml       string
		errContain string
	}{
		{
			name:       "missing database host",
			yaml:       "database:\n  name: x\n  user: x\nebay:\n  app_id: a\n  cert_id: c\n  redirect_uri: r\n",
			errContain: "database.host is required",
		},
		{
			name:       "missing ebay app id",
			yaml:       "database:\n  host: h\n  name: x\n  user: x\nebay:\n  cert_id: c\n  redirect_uri: r\n",
			errContain: "ebay.app_id is required",
		},
		{
			name:       "missing redirect uri",
			yaml:       "database:\n  host: h\n  name: x\n  user: x\nebay:\n  app_id: a\n  cert_id: c\n",
			errContain: "ebay.redirect_uri is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContain)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := &config.DatabaseConfig{
		Host: "db", Port: 5433, Name: "clx", User: "u", Password: "p", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5433 dbname=clx user=u password=p sslmode=disable",
		d.DSN(),
	)
}
