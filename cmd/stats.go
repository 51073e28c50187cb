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
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/internal/iocache"
	"github.com/gnames/wuff/internal/ioview"
	"github.com/gnames/wuff/pkg/config"
	"github.com/gnames/wuff/pkg/stats"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics of dog names",
		Long: `Show the longest and the shortest dog name, number of female,
male and all dogs, and the ten most common names overall and per sex.

Records with an unknown name ("?") are not counted.

Examples:
  wuff stats
  wuff stats --year 2020
  wuff stats -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), cmd.OutOrStdout(), dogs, cfg)
		},
	}
	return statsCmd
}

func runStats(
	ctx context.Context,
	w io.Writer,
	cache *iocache.Cache,
	cfg *config.Config,
) error {
	c, err := cache.Dogs(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	res := stats.Analyze(c.All(), cfg.Year)
	return ioview.New(w, cfg.Format).Stats(res)
}
