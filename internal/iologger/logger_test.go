package iologger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/pkg/config"
	"github.com/gnames/wuff/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"trace": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, exp := range tests {
		assert.Equal(t, exp, parseLevel(in), in)
	}
}

func TestHandler(t *testing.T) {
	tests := []struct {
		format string
		exp    string
	}{
		{"json", `"msg":"dog found"`},
		{"text", `msg="dog found"`},
		{"tint", "dog found"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := config.LogConfig{
				Format: tt.format, Level: "info", Destination: "file",
			}
			log := slog.New(handler(&buf, cfg))
			log.Info("dog found", "name", "Rex")
			log.Debug("hidden")
			assert.Contains(t, buf.String(), tt.exp)
			assert.Contains(t, buf.String(), "Rex")
			assert.NotContains(t, buf.String(), "hidden")
		})
	}
}

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "debug", Destination: "file"}
	require.NoError(t, Init(dir, cfg, false))

	slog.Debug("written to file")
	content, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
}

func TestInitNoDir(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	err := Init(dir, cfg, false)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestInitAppend(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}
	logPath := filepath.Join(dir, LogFile)

	require.NoError(t, Init(dir, cfg, false))
	slog.Info("first run")
	require.NoError(t, Init(dir, cfg, true))
	slog.Info("reconfigured")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "first run")
	assert.Contains(t, string(content), "reconfigured")

	require.NoError(t, Init(dir, cfg, false))
	slog.Info("next run")

	content, err = os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "first run")
	assert.Contains(t, string(content), "next run")
}
