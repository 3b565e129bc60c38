package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridepath/config"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ridepath.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, &want, cfg)
}

func TestLoad_Layers(t *testing.T) {
	path := writeTOML(t, `
source = "U2"
port = 9000
graph = "roads.yaml"

[log]
level = "debug"
`)

	cfg, err := config.LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "U2", cfg.Source)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "roads.yaml", cfg.Graph)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.FormatConsole, cfg.Log.Format, "untouched keys keep defaults")

	t.Setenv("RIDEPATH_PORT", "9100")
	t.Setenv("RIDEPATH_LOG_FORMAT", "json")
	cfg, err = config.LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port, "env beats file")
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.Flags(fs)
	require.NoError(t, fs.Parse([]string{"--port", "9200", "-s", "U3", "--verify"}))
	cfg, err = config.LoadFile(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Port, "flags beat env")
	assert.Equal(t, "U3", cfg.Source)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "debug", cfg.Log.Level, "unset flags do not shadow lower layers")
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("RIDEPATH_LOG_FORMAT", "xml")
	t.Setenv("RIDEPATH_COLOR", "sometimes")
	_, err := config.LoadFile("", nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "log.format")
	assert.ErrorContains(t, err, "color")
}

func TestLoad_BadFile(t *testing.T) {
	path := writeTOML(t, "port = = 1")
	_, err := config.LoadFile(path, nil)
	assert.Error(t, err)
}

func TestValidate_Port(t *testing.T) {
	cfg := config.Default()
	cfg.Port = 70000
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}
