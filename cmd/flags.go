package cmd

import (
	"github.com/gnames/wuff/pkg/config"
	"github.com/spf13/cobra"
)

// flagOptions converts flags given on the command line into config
// options. Flags that were not set keep values from the config file.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("year") {
		year, _ := flags.GetInt("year")
		res = append(res, config.OptYear(year))
	}

	if flags.Changed("format") {
		format, _ := flags.GetString("format")
		res = append(res, config.OptFormat(format))
	}

	if verbose, _ := flags.GetBool("verbose"); verbose {
		res = append(res,
			config.OptLogLevel("debug"),
			config.OptLogDestination("stderr"),
			config.OptLogFormat("tint"),
		)
	}

	if flags.Changed("output-dir") {
		dir, _ := flags.GetString("output-dir")
		res = append(res, config.OptOutputDir(dir))
	}

	if noOpen, _ := flags.GetBool("no-open"); noOpen {
		res = append(res, config.OptWithOpen(false))
	}

	if noProgress, _ := flags.GetBool("no-progress"); noProgress {
		res = append(res, config.OptWithProgress(false))
	}

	return res
}
