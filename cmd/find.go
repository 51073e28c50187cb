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
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/internal/iocache"
	"github.com/gnames/wuff/internal/ioview"
	"github.com/gnames/wuff/pkg/config"
	"github.com/gnames/wuff/pkg/lookup"
	"github.com/spf13/cobra"
)

// getFindCmd returns the find command.
func getFindCmd() *cobra.Command {
	findCmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Find dogs with the given name",
		Long: `Show name, birth year and sex of every registered dog with
exactly the given name.

Without --year the latest record year of the registry is used.
Names are case sensitive.

Examples:
  wuff find Luna
  wuff find Rey --year 2017
  wuff find Rey -y 2017 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd.Context(), cmd.OutOrStdout(), dogs, cfg, args[0])
		},
	}
	return findCmd
}

func runFind(
	ctx context.Context,
	w io.Writer,
	cache *iocache.Cache,
	cfg *config.Config,
	name string,
) error {
	c, err := cache.Dogs(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	res := lookup.Find(c, name, cfg.Year)
	slog.Debug("Lookup finished",
		"name", name, "year", res.Year, "status", res.Status, "dogs", len(res.Dogs))

	return ioview.New(w, cfg.Format).Find(res)
}
