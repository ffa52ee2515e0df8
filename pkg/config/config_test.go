package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/limbo/stravadictos/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `{
		"club_id": 1015147,
		"timezone": "America/Mexico_City",
		"threshold_minutes": 27,
		"page_size": 30,
		"max_records": 50,
		"report_dir": "./reports",
		"auth_scopes": ["read", "activity:read"],
		"callback_addr": "127.0.0.1:5000"
	}`)

	settings, err := config.LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, int64(1015147), settings.ClubID)
	assert.Equal(t, "America/Mexico_City", settings.Timezone)
	assert.Equal(t, 27, settings.ThresholdMinutes)
	assert.Equal(t, 30, settings.PageSize)
	assert.Equal(t, 50, settings.MaxRecords)
	assert.Equal(t, []string{"read", "activity:read"}, settings.AuthScopes)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading settings file error")
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	path := writeSettings(t, `{"club_id": `)

	_, err := config.LoadSettings(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings file error")
}

func TestLoadSettingsValidation(t *testing.T) {
	path := writeSettings(t, `{
		"club_id": 1015147,
		"timezone": "",
		"threshold_minutes": 27,
		"page_size": 30,
		"max_records": 50,
		"report_dir": "./reports",
		"auth_scopes": ["read"],
		"callback_addr": "127.0.0.1:5000"
	}`)

	_, err := config.LoadSettings(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings validation error")
}
