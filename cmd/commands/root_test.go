package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage, "runtime errors must not dump the usage text")
	assert.False(t, rootCmd.SilenceErrors, "the error itself still gets printed")

	for _, name := range []string{"run", "once", "status"} {
		_, _, err := rootCmd.Find([]string{name})
		assert.NoError(t, err, name)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "configs/config.yaml", configPath())

	t.Setenv("CONFIG_PATH", "/etc/pigeonwatch.yaml")
	assert.Equal(t, "/etc/pigeonwatch.yaml", configPath())

	cfgPath = "override.yaml"
	defer func() { cfgPath = "" }()
	assert.Equal(t, "override.yaml", configPath())
}
