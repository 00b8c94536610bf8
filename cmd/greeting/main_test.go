package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-greeting/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func builtin(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Parse(config.DefaultYAML())
	require.NoError(t, err)
	return cfg
}

func TestMessageCommand(t *testing.T) {
	out := execute(t, "message")
	want := strings.Join(builtin(t).Content.Message, "\n")
	assert.Equal(t, want+"\n", out)
}

func TestConfigCommandRoundTrips(t *testing.T) {
	out := execute(t, "config")
	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, builtin(t), cfg)
}

func TestConfigCommandCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content:\n  title: Hi\n"), 0o600))
	t.Cleanup(func() { flagConfig = "" })

	// Only the title changes; the message comes from the built-in card
	out := execute(t, "message", "--config", path)
	assert.Equal(t, strings.Join(builtin(t).Content.Message, "\n")+"\n", out)
}

func TestNewLogger(t *testing.T) {
	t.Cleanup(func() {
		flagLogFile = ""
		flagLogLevel = "info"
	})

	flagLogLevel = "loud"
	_, _, err := newLogger()
	assert.Error(t, err)

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "greeting.log")
	logger, closer, err := newLogger()
	require.NoError(t, err)
	logger.Debug("hello")
	require.NoError(t, closer.Close())
	assert.FileExists(t, flagLogFile)
}
