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
	"github.com/gnames/wuff/internal/iofs"
	"github.com/gnames/wuff/internal/ioimage"
	"github.com/gnames/wuff/internal/ioopen"
	"github.com/gnames/wuff/internal/ioview"
	"github.com/gnames/wuff/pkg/config"
	"github.com/gnames/wuff/pkg/fabricate"
	"github.com/gnames/wuff/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Make up a dog and download its picture",
		Long: `Make up a new dog from the registry.

This command:
  1. Picks a random sex
  2. Takes a name from one random dog of that sex
  3. Takes a birth year from another random dog of that sex
  4. Downloads a random dog picture as {name}_{birth year}.{ext}
  5. Opens the picture with the default viewer

Dogs with unknown names are never used.

Examples:
  wuff create
  wuff create -o ~/Pictures --year 2015
  wuff create --no-open --no-progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			images := ioimage.New(cfg)
			return runCreate(cmd.Context(), cmd.OutOrStdout(), dogs, images, cfg)
		},
	}

	createCmd.Flags().StringP("output-dir", "o", ".",
		"directory for the dog picture")
	createCmd.Flags().Bool("no-open", false,
		"do not open the picture after download")
	createCmd.Flags().Bool("no-progress", false,
		"do not show download progress")

	return createCmd
}

func runCreate(
	ctx context.Context,
	w io.Writer,
	cache *iocache.Cache,
	images lifecycle.ImageSource,
	cfg *config.Config,
) error {
	c, err := cache.Dogs(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDir(cfg.OutputDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	fab := fabricate.New(images, cfg.OutputDir, nil)
	d, err := fab.Fabricate(ctx, c, cfg.Year)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	slog.Info("Dog made up", "id", d.ID, "label", d.Label, "image", d.Image)

	if _, err = images.Download(ctx, d.Image, d.Path); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioview.New(w, cfg.Format).Created(d); err != nil {
		return err
	}

	if !cfg.WithOpen {
		return nil
	}

	// the picture is saved already, a missing viewer is not fatal
	if err = ioopen.Open(d.Path); err != nil {
		slog.Warn("Cannot open picture", "path", d.Path, "error", err)
		gn.Warn("Cannot open <em>%s</em>, the picture is saved", d.Path)
	}
	return nil
}
