package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ForageFantasy/ForageFantasy/internal/config"
	"github.com/ForageFantasy/ForageFantasy/internal/modconfig"
	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

func useFileStore(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cfg = config.Config{Mods: config.Mods{Dir: dir, Storage: config.StorageFile}}

	return filepath.Join(dir, modconfig.ModID, modding.ConfigFileName)
}

func TestFormatConfig(t *testing.T) {
	c := modconfig.Default()

	out, err := formatConfig(&c, formatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"TapperQualityOptions": 1`)

	out, err = formatConfig(&c, formatTOML)
	require.NoError(t, err)
	assert.Contains(t, out, "BerryBushChanceToGetXP = 100")

	_, err = formatConfig(&c, "yaml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestConfigCommands(t *testing.T) {
	path := useFileStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(`{"BerryBushXPAmount":-3}`), 0o600))

	var out bytes.Buffer
	configVerifyCmd.SetOut(&out)
	require.NoError(t, configVerifyCmd.RunE(configVerifyCmd, nil))
	assert.Contains(t, out.String(), modconfig.CorrectedMessage)

	out.Reset()
	require.NoError(t, configVerifyCmd.RunE(configVerifyCmd, nil))
	assert.Contains(t, out.String(), "config is valid")

	out.Reset()
	outputFormat = formatJSON
	configShowCmd.SetOut(&out)
	require.NoError(t, configShowCmd.RunE(configShowCmd, nil))
	assert.Contains(t, out.String(), `"BerryBushXPAmount": 0`)

	require.NoError(t, os.WriteFile(path, []byte(`{"CompatibilityMode":true}`), 0o600))

	out.Reset()
	configResetCmd.SetOut(&out)
	require.NoError(t, configResetCmd.RunE(configResetCmd, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"CompatibilityMode": false`)
}

func TestConfigResetWithoutStoredConfig(t *testing.T) {
	path := useFileStore(t)

	var out bytes.Buffer
	configResetCmd.SetOut(&out)
	require.NoError(t, configResetCmd.RunE(configResetCmd, nil))
	assert.FileExists(t, path)
}

func TestConfigData(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name:  "file storage",
			setup: func(t *testing.T) { useFileStore(t) },
		},
		{
			name: "db storage",
			setup: func(t *testing.T) {
				cfg = config.Config{
					DB:   config.DB{File: filepath.Join(t.TempDir(), "mods.db")},
					Mods: config.Mods{Storage: config.StorageDB},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			var out bytes.Buffer
			configDataCmd.SetOut(&out)
			require.NoError(t, configDataCmd.RunE(configDataCmd, nil))
			assert.Empty(t, out.String())

			configResetCmd.SetOut(&bytes.Buffer{})
			require.NoError(t, configResetCmd.RunE(configResetCmd, nil))

			out.Reset()
			require.NoError(t, configDataCmd.RunE(configDataCmd, nil))
			assert.Contains(t, out.String(), "config: {")
			assert.Contains(t, out.String(), `"TapperQualityOptions": 1`)
		})
	}
}
