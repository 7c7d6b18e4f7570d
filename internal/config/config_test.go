package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "pigeon", cfg.Token.Name)
	assert.InDelta(t, 941_000_000, cfg.Token.TargetMcap, 1)
	assert.Equal(t, "https://api.dexscreener.com", cfg.DataSource.BaseURL)
	assert.Equal(t, "09:00", cfg.Schedule.PostTime)
	assert.Equal(t, "Local", cfg.Schedule.Timezone)
	assert.Equal(t, "data/bot_state.json", cfg.State.File)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
token:
  name: dove
  target_mcap: 500000000
schedule:
  post_time: "12:30"
`), 0644))

	t.Setenv("POST_TIME", "18:45")
	t.Setenv("TARGET_MCAP", "600000000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dove", cfg.Token.Name)
	assert.InDelta(t, 600_000_000, cfg.Token.TargetMcap, 1, "env wins over file")
	assert.Equal(t, "18:45", cfg.Schedule.PostTime)
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twitter credentials")
}

func TestValidate_OK(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.Twitter.APIKey = "k"
	cfg.Twitter.APISecret = "s"
	cfg.Twitter.AccessToken = "at"
	cfg.Twitter.AccessTokenSecret = "ats"

	assert.NoError(t, cfg.Validate())
}

func TestParsePostTime(t *testing.T) {
	h, m, err := ParsePostTime("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 5, m)

	_, _, err = ParsePostTime("25:00")
	assert.Error(t, err)

	_, _, err = ParsePostTime("9am")
	assert.Error(t, err)
}
