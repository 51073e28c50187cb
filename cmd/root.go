/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/internal/iocache"
	"github.com/gnames/wuff/internal/iodata"
	"github.com/gnames/wuff/internal/iofs"
	"github.com/gnames/wuff/internal/iologger"
	wuff "github.com/gnames/wuff/pkg"
	"github.com/gnames/wuff/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg *config.Config

	// dogs keeps the registry for the lifetime of the process.
	dogs *iocache.Cache
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", wuff.Version, wuff.Build),
		Use:     "wuff",
		Short:   "Explore dog names registered in the city of Zürich",
		Long: `Wuff downloads the open registry of dog names of the city of Zürich
and lets you look up names, see statistics and make up new dogs.

Commands:
  find     Show records of dogs with a given name
  stats    Show longest, shortest and most common names
  create   Make up a dog and download its picture

Every command accepts --year to use records of one year only.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (WUFF_*)
  3. Config file (~/.config/wuff/config.yaml)
  4. Built-in defaults

Environment Variables:
  WUFF_DATA_URL          URL of the dog names CSV file
  WUFF_IMAGE_LIST_URL    URL of the JSON list of dog pictures
  WUFF_IMAGE_BASE_URL    URL prefix for downloading a picture
  WUFF_IMAGE_SUFFIXES    Allowed picture extensions (.png,.jpg)
  WUFF_TIMEOUT           Seconds allowed for each network call
  WUFF_LOG_LEVEL         Log level (debug/info/warn/error)
  WUFF_LOG_FORMAT        Log format (json/text/tint)
  WUFF_LOG_DESTINATION   Log destination (file/stderr/stdout)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "wuff version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for wuff")

	pf := rootCmd.PersistentFlags()
	pf.IntP("year", "y", 0, "use only records of this year")
	pf.StringP("format", "f", "table", "output format, 'table' or 'json'")
	pf.BoolP("verbose", "v", false, "write debug logs to STDERR")

	rootCmd.AddCommand(
		getFindCmd(),
		getStatsCmd(),
		getCreateCmd(),
		getVersionCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update(flagOptions(cmd))

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
		"year", cfg.Year,
	)

	dogs = iocache.New(iodata.New(cfg))
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// The log file of this run is appended to, not truncated.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := getRootCmd().ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportError prints errors that were not shown to the user yet.
// Errors of wuff are printed where they happen, errors of cobra (wrong
// arguments, unknown commands and flags) are printed here.
func reportError(w io.Writer, err error) {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return
	}
	fmt.Fprintf(w, "Error: %s\nRun 'wuff --help' for usage.\n", err)
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions().
	v.SetEnvPrefix("WUFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Dataset
	_ = v.BindEnv("data.url", "WUFF_DATA_URL")

	// Dog pictures, suffixes are comma-separated
	_ = v.BindEnv("image.list_url", "WUFF_IMAGE_LIST_URL")
	_ = v.BindEnv("image.base_url", "WUFF_IMAGE_BASE_URL")
	_ = v.BindEnv("image.suffixes", "WUFF_IMAGE_SUFFIXES")

	// Log configuration
	_ = v.BindEnv("log.level", "WUFF_LOG_LEVEL")
	_ = v.BindEnv("log.format", "WUFF_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "WUFF_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("timeout", "WUFF_TIMEOUT")

	v.AutomaticEnv()
}
