package common

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"empty company file", func(c *Config) { c.CompanyFile = "" }},
		{"empty trip file", func(c *Config) { c.TripFile = "" }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"unknown log package", func(c *Config) { c.LogLevel = "info,raft=debug" }},
		{"empty log level", func(c *Config) { c.LogLevel = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfigValidateLogLevelSpec(t *testing.T) {
	c := DefaultConfig()
	c.LogLevel = "info, persist=debug"
	assert.NoError(t, c.Validate())
}

func TestConfigPath(t *testing.T) {
	c := DefaultConfig()
	c.DataDir = "data"
	assert.Equal(t, filepath.Join("data", "empresa.bin"), c.Path(c.CompanyFile))

	abs := filepath.Join(t.TempDir(), "x.bin")
	assert.Equal(t, abs, c.Path(abs))
}

func TestConfigString(t *testing.T) {
	c := DefaultConfig()
	c.Metrics = true
	s := c.String()
	assert.Contains(t, s, "STORAGE")
	assert.Contains(t, s, "OUTPUT")
	assert.Contains(t, s, "LOGGING")
	assert.Contains(t, s, "empresa.bin")
	assert.Contains(t, s, "true")
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warn":    logger.WARNING,
		"warning": logger.WARNING,
		"notice":  logger.NOTICE,
		" error ": logger.ERROR,
	} {
		got, err := ParseLogLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestParseLogLevels(t *testing.T) {
	tests := []struct {
		spec string
		want map[string]logger.LogLevel
	}{
		{"warn", map[string]logger.LogLevel{"persist": logger.WARNING, "cmd": logger.WARNING}},
		{"debug", map[string]logger.LogLevel{"persist": logger.DEBUG, "cmd": logger.DEBUG}},
		{"info,persist=debug", map[string]logger.LogLevel{"persist": logger.DEBUG, "cmd": logger.INFO}},
		{"persist=debug,info", map[string]logger.LogLevel{"persist": logger.DEBUG, "cmd": logger.INFO}},
		{"cmd=error", map[string]logger.LogLevel{"persist": logger.WARNING, "cmd": logger.ERROR}},
		{" persist = debug , cmd=ERROR ", map[string]logger.LogLevel{"persist": logger.DEBUG, "cmd": logger.ERROR}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseLogLevels(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, spec := range []string{
		"",
		"info,",
		"loud",
		"raft=debug",
		"persist=loud",
		"info,debug",
		"persist=info,persist=debug",
	} {
		_, err := ParseLogLevels(spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("persist", &buf)

	l.Debugf("hidden %d", 1)
	l.Warningf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[persist] WARN  shown 2")

	buf.Reset()
	l.SetLevel(logger.DEBUG)
	l.Debugf("now visible")
	assert.Contains(t, buf.String(), "[persist] DEBUG now visible")

	buf.Reset()
	l.SetLevel(logger.ERROR)
	assert.PanicsWithValue(t, "broken 7", func() { l.Panicf("broken %d", 7) })
	assert.Contains(t, buf.String(), "[persist] CRIT  broken 7")
}

func TestInitLoggers(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, InitLoggers(c))
	c.LogLevel = "error,persist=debug"
	require.NoError(t, InitLoggers(c))
	c.LogLevel = "nope"
	assert.Error(t, InitLoggers(c))
	c.LogLevel = "raft=debug"
	assert.Error(t, InitLoggers(c))
}
