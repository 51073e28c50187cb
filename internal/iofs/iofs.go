// Package iofs prepares directories and files wuff keeps in the home
// directory of a user.
package iofs

import (
	"bytes"
	"os"

	"github.com/gnames/wuff/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# Configuration of wuff.
#
# Every value can be overridden by an environment variable with WUFF_
# prefix, for example WUFF_DATA_URL or WUFF_LOG_LEVEL.
# Image suffixes in env are comma-separated: WUFF_IMAGE_SUFFIXES=.png,.jpg

`

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates dir with parents unless it already exists.
func EnsureDir(dir string) error {
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// ConfigYAML renders default settings as a documented config.yaml.
func ConfigYAML() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.New()); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	content, err := ConfigYAML()
	if err != nil {
		return WriteConfigError(configPath, err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return WriteConfigError(configPath, err)
	}

	return nil
}
