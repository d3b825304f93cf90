package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/valentine/internal/config"
)

// isolate points HOME and the working directory at empty temp dirs so no
// real config is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	c, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), c)
}

func TestLoadConfig_LocalFileWins(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "valentine"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".config", "valentine", "config.yaml"), []byte("variant: rose\n"), 0o600))
	require.NoError(t, os.WriteFile(".valentine.yaml", []byte("variant: garden\n"), 0o600))

	c, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "garden", c.Variant)
}

func TestLoadConfig_UserFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "valentine")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
variant: rose
timing:
  enter_bridge: 750ms
audio:
  enabled: false
`), 0o600))

	c, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "rose", c.Variant)
	assert.Equal(t, 750*time.Millisecond, c.Timing.EnterBridge)
	assert.False(t, c.Audio.Enabled)
	assert.Equal(t, time.Second, c.Timing.EnterThoughts, "unset keys keep defaults")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("custom.yaml", []byte("variant: rose\nhistory:\n  enabled: true\n"), 0o600))
	t.Setenv("VALENTINE_VARIANT", "garden")
	t.Setenv("VALENTINE_HISTORY_ENABLED", "false")
	t.Setenv("VALENTINE_TIMING_SCALE", "0.5")

	c, err := loadConfig(viper.New(), "custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "garden", c.Variant)
	assert.False(t, c.History.Enabled)
	assert.InDelta(t, 0.5, c.Timing.Scale, 1e-9)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := loadConfig(viper.New(), "nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadConfig_DefaultTemplateRoundTrips(t *testing.T) {
	isolate(t)
	require.NoError(t, config.WriteDefaultConfig("template.yaml"))

	c, err := loadConfig(viper.New(), "template.yaml")
	require.NoError(t, err)
	assert.NoError(t, c.Validate())
	assert.Equal(t, config.Defaults().Timings(), c.Timings())
}

func TestRunFlags_Apply(t *testing.T) {
	c := config.Defaults()
	runFlags{}.apply(&c)
	assert.Equal(t, config.Defaults(), c, "no flags change nothing")

	runFlags{variant: "rose", script: "me.yaml", noAudio: true, debug: true, fast: true}.apply(&c)
	assert.Equal(t, "rose", c.Variant)
	assert.Equal(t, "me.yaml", c.Script.Path)
	assert.False(t, c.Audio.Enabled)
	assert.True(t, c.Debug)
	assert.InDelta(t, FastScale, c.Timing.Scale, 1e-9)
	assert.Equal(t, 250*time.Millisecond, c.Timings().EnterThoughts)
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)
	assert.Equal(t, filepath.Join(home, "love.yaml"), expandHome("~/love.yaml"))
	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, "/abs/love.yaml", expandHome("/abs/love.yaml"))
	assert.Equal(t, "~other/x", expandHome("~other/x"))
}

func TestLoadScript(t *testing.T) {
	isolate(t)

	s, err := loadScript("")
	require.NoError(t, err)
	assert.Equal(t, "May", s.Recipient)

	require.NoError(t, os.WriteFile("mine.yaml", []byte("recipient: Sam\n"), 0o600))
	s, err = loadScript("mine.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Sam", s.Recipient)

	_, err = loadScript("missing.yaml")
	assert.Error(t, err)
}
