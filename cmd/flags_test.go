package cmd

import (
	"testing"

	"github.com/gnames/wuff/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagOptions(t *testing.T) {
	root := getRootCmd()
	create, _, err := root.Find([]string{"create"})
	require.NoError(t, err)

	err = create.ParseFlags([]string{
		"--year", "2020", "-f", "json", "-v",
		"-o", "pics", "--no-open", "--no-progress",
	})
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(flagOptions(create))

	assert.Equal(t, 2020, cfg.Year)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Destination)
	assert.Equal(t, "pics", cfg.OutputDir)
	assert.False(t, cfg.WithOpen)
	assert.False(t, cfg.WithProgress)
}

func TestFlagOptionsDefaults(t *testing.T) {
	root := getRootCmd()
	find, _, err := root.Find([]string{"find"})
	require.NoError(t, err)
	require.NoError(t, find.ParseFlags([]string{}))

	assert.Empty(t, flagOptions(find))
}
