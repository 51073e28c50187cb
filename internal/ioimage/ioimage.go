// Package ioimage implements ImageSource interface for a web service
// that lists dog pictures as a JSON array and serves them as files.
// This is an impure I/O package.
package ioimage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wuff/internal/iohttp"
	"github.com/gnames/wuff/pkg/config"
	"github.com/gnames/wuff/pkg/lifecycle"
)

// images implements the ImageSource interface.
type images struct {
	listURL      string
	baseURL      string
	suffixes     []string
	withProgress bool
	client       *iohttp.Client
}

// New creates an ImageSource from the image settings of cfg.
func New(cfg *config.Config) lifecycle.ImageSource {
	res := &images{
		listURL:      cfg.Image.ListURL,
		baseURL:      strings.TrimRight(cfg.Image.BaseURL, "/"),
		suffixes:     cfg.Image.Suffixes,
		withProgress: cfg.WithProgress,
		client:       iohttp.New(time.Duration(cfg.Timeout) * time.Second),
	}
	return res
}

// List returns picture paths that have one of the allowed extensions.
func (im *images) List(ctx context.Context) ([]string, error) {
	resp, err := im.client.Get(ctx, im.listURL)
	if err != nil {
		return nil, NetworkFailureError(im.listURL, err)
	}
	defer resp.Body.Close()

	bs, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NetworkFailureError(im.listURL, err)
	}

	var all []string
	enc := gnfmt.GNjson{}
	if err = enc.Decode(bs, &all); err != nil {
		return nil, InvalidListError(im.listURL, err)
	}

	var res []string
	for _, v := range all {
		ext := strings.ToLower(path.Ext(v))
		if slices.Contains(im.suffixes, ext) {
			res = append(res, v)
		}
	}
	slog.Debug("Dog pictures listed", "all", len(all), "allowed", len(res))
	return res, nil
}

// Download streams the picture to savePath. The file is not removed if
// the download fails half way.
func (im *images) Download(
	ctx context.Context,
	relPath, savePath string,
) (int64, error) {
	url := im.baseURL + "/" + strings.TrimLeft(relPath, "/")
	resp, err := im.client.Get(ctx, url)
	if err != nil {
		return 0, NetworkFailureError(url, err)
	}
	defer resp.Body.Close()

	size := max(resp.ContentLength, 0)

	f, err := os.Create(savePath)
	if err != nil {
		return 0, WriteFileError(savePath, err)
	}

	var r io.Reader = resp.Body
	if im.withProgress {
		bar := newProgressBar(size, "Downloading dog picture ")
		defer bar.Finish()
		r = bar.NewProxyReader(resp.Body)
	}

	n, err := io.Copy(&fileWriter{f}, r)
	if cerr := f.Close(); cerr != nil && err == nil {
		return n, WriteFileError(savePath, cerr)
	}
	if err != nil {
		var werr *writeError
		if errors.As(err, &werr) {
			return n, WriteFileError(savePath, werr.err)
		}
		return n, NetworkFailureError(url, err)
	}
	if n != size {
		return n, SizeMismatchError(url, size, n)
	}

	slog.Info("Dog picture downloaded",
		"url", url, "path", savePath, "size", humanize.Bytes(uint64(n)))
	return n, nil
}

// writeError marks failures of the local file during a download.
type writeError struct {
	err error
}

func (e *writeError) Error() string {
	return e.err.Error()
}

// fileWriter tells disk failures apart from network failures in io.Copy.
type fileWriter struct {
	w io.Writer
}

func (fw *fileWriter) Write(p []byte) (int, error) {
	n, err := fw.w.Write(p)
	if err != nil {
		return n, &writeError{err: err}
	}
	return n, nil
}

// newProgressBar creates a byte counting progress bar that disappears
// when finished.
func newProgressBar(total int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
