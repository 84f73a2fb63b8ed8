package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdcapital/bird/pkg/config"
)

// isolate points every config and state lookup at a temp dir so tests
// never read the developer's own files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"BIRD_PROTOCOL", "BIRD_THEME", "BIRD_CONTENT", "BIRD_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func resetFlags() {
	configPath, contentPath, themeName = "", "", ""
	watchContent, verbose = false, false
	renderWidth, renderHeight, renderScroll, renderOpen = 0, 0, 0, 0
	renderAnchor, renderProtocol = "", ""
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bird "+version+" ("+commit+") built "+date+"\n", out)
}

func TestValidateBuiltInCatalog(t *testing.T) {
	isolate(t)
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in catalog: ok")
	assert.Contains(t, out, "faq items: 5")
}

func TestValidateRejectsBrokenCatalog(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hero: [\n"), 0o644))

	_, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestRenderFrameSize(t *testing.T) {
	isolate(t)
	out, err := execute(t, "render", "--width", "80", "--height", "20", "--protocol", "none", "--theme", "bird")
	require.NoError(t, err)

	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, rows, 20)
}

func TestRenderAnchorAndOpenItem(t *testing.T) {
	isolate(t)
	out, err := execute(t, "render", "--width", "100", "--height", "30", "--anchor", "faq", "--open", "1", "--protocol", "none", "--theme", "bird")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "$100k")
}

func TestRenderRejectsUnknownProtocol(t *testing.T) {
	isolate(t)
	_, err := execute(t, "render", "--width", "80", "--height", "20", "--protocol", "braille")
	assert.Error(t, err)
}

func TestThemesMarksCurrent(t *testing.T) {
	isolate(t)
	out, err := execute(t, "themes", "--theme", "night")
	require.NoError(t, err)

	text := ansi.Strip(out)
	assert.Contains(t, text, "* night")
	assert.Contains(t, text, "  bird")
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	isolate(t)
	resetFlags()
	t.Cleanup(resetFlags)
	contentPath, themeName, watchContent, verbose = "site.yaml", "night", true, true

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "site.yaml", cfg.Content.Path)
	assert.Equal(t, "night", cfg.Theme.Name)
	assert.True(t, cfg.Content.Watch)
	assert.Equal(t, "debug", cfg.General.LogLevel)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}

func TestNewLoggerCreatesLogDir(t *testing.T) {
	dir := isolate(t)
	cfg := config.DefaultConfig()
	cfg.General.LogFile = filepath.Join(dir, "logs", "nested", "bird.log")

	logger, closeLog, err := newLogger(cfg, true)
	require.NoError(t, err)
	logger.Info("hello")
	closeLog()

	data, err := os.ReadFile(cfg.General.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}

func TestRenderRejectsMissingFAQItem(t *testing.T) {
	isolate(t)
	_, err := execute(t, "render", "--width", "80", "--height", "20", "--protocol", "none", "--open", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
