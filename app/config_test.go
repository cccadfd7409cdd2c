package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigFile(t *testing.T, contents string) func() {
	t.Helper()

	dir, err := ioutil.TempDir("", "horizon-config")
	require.NoError(t, err)

	path := filepath.Join(dir, "horizon-datamodel.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))

	old := configFile
	configFile = path
	return func() {
		configFile = old
		os.RemoveAll(dir)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	config := &Config{}
	require.NoError(t, loadConfig(config))

	assert.Equal(t, "WARN", config.Logging.Level)
	assert.Equal(t, outputText, config.Validation.Output)
	assert.True(t, config.Validation.Lint)
	assert.Equal(t, time.Minute, config.Source.Timeout)
	assert.Empty(t, config.AWS.S3Endpoint)
}

func TestLoadConfig_File(t *testing.T) {
	defer withConfigFile(t, `
[validation]
output = "logfmt"

[source]
timeout = "15s"

[aws]
s3_endpoint = "http://127.0.0.1:9000"
`)()

	config := &Config{}
	require.NoError(t, loadConfig(config))

	assert.Equal(t, outputLogfmt, config.Validation.Output)
	assert.True(t, config.Validation.Lint, "defaults are kept for missing keys")
	assert.Equal(t, 15*time.Second, config.Source.Timeout)
	assert.Equal(t, "http://127.0.0.1:9000", config.AWS.S3Endpoint)

	blob := config.String()
	assert.Contains(t, blob, "logfmt")
	assert.Contains(t, blob, "127.0.0.1:9000")
}

func TestLoadConfig_Environment(t *testing.T) {
	os.Setenv("HORIZON_DATAMODEL_VALIDATION_LINT", "false")
	os.Setenv("HORIZON_DATAMODEL_VALIDATION_OUTPUT", "json")
	defer os.Unsetenv("HORIZON_DATAMODEL_VALIDATION_LINT")
	defer os.Unsetenv("HORIZON_DATAMODEL_VALIDATION_OUTPUT")

	config := &Config{}
	require.NoError(t, loadConfig(config))

	assert.False(t, config.Validation.Lint)
	assert.Equal(t, outputJSON, config.Validation.Output)
}

func TestLoadConfig_Invalid(t *testing.T) {
	defer withConfigFile(t, `
[validation]
output = "xml"
`)()

	err := loadConfig(&Config{})
	assert.EqualError(t, err, `config did not pass validation: unknown output format "xml", use one of: text, json, logfmt`)
}

func TestLoadConfig_Unreadable(t *testing.T) {
	defer withConfigFile(t, `[validation`)()

	err := loadConfig(&Config{})
	assert.Error(t, err)
}
