package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/wuff/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "wuff")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Config directory should exist")

	logDir := filepath.Join(tmpDir, ".local", "share", "wuff",
		"logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Log directory should exist")
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}
}

// TestTouchDir_CreatesNewDirectory verifies new directory
// creation.
func TestTouchDir_CreatesNewDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	err := touchDir(newDir)
	require.NoError(t, err)

	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestTouchDir_FileInTheWay verifies a file blocking the
// directory path is reported.
func TestTouchDir_FileInTheWay(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := touchDir(filepath.Join(blocker, "sub"))
	assert.Error(t, err)
}

// TestEnsureConfigFile_CreatesFile verifies config file
// is created with default settings.
func TestEnsureConfigFile_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	content, err := os.ReadFile(config.ConfigFilePath(tmpDir))
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(content, &cfg))
	def := config.New()
	assert.Equal(t, def.Data, cfg.Data)
	assert.Equal(t, def.Image, cfg.Image)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Equal(t, def.Timeout, cfg.Timeout)
	assert.Empty(t, cfg.HomeDir)
}

// TestEnsureConfigFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsureConfigFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := config.ConfigFilePath(tmpDir)
	customContent := "# Custom config\ntimeout: 10"
	err = os.WriteFile(configPath, []byte(customContent), 0644)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content),
		"Existing config file should not be overwritten")
}

// TestEnsureConfigFile_NoDirectory verifies missing config
// directory is reported.
func TestEnsureConfigFile_NoDirectory(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "nohome"))
	assert.Error(t, err)
}

// TestConfigYAML verifies rendered config documents
// all persistent sections.
func TestConfigYAML(t *testing.T) {
	res, err := ConfigYAML()
	require.NoError(t, err)
	for _, v := range []string{
		"WUFF_", "data:", "image:", "suffixes:", "log:", "timeout: 5",
	} {
		assert.Contains(t, res, v)
	}
	assert.NotContains(t, res, "homedir")
	assert.NotContains(t, res, "outputdir")
}

// TestEnsureDir verifies nested output directories are created
// and existing ones are accepted.
func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dogs", "pictures")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureDir(dir))
}
