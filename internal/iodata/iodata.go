// Package iodata implements DataSource interface for the dog names
// registry published as a CSV file over HTTP.
// This is an impure I/O package.
package iodata

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gnames/wuff/internal/iohttp"
	"github.com/gnames/wuff/pkg/config"
	"github.com/gnames/wuff/pkg/dog"
	"github.com/gnames/wuff/pkg/lifecycle"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// dataset implements the DataSource interface.
type dataset struct {
	url    string
	client *iohttp.Client
}

// New creates a DataSource that downloads the registry from cfg.Data.URL.
func New(cfg *config.Config) lifecycle.DataSource {
	res := &dataset{
		url:    cfg.Data.URL,
		client: iohttp.New(time.Duration(cfg.Timeout) * time.Second),
	}
	return res
}

// Retrieve downloads the registry and converts it to a Collection.
func (d *dataset) Retrieve(ctx context.Context) (*dog.Collection, error) {
	slog.Debug("Retrieving dog data", "url", d.url)

	resp, err := d.client.Get(ctx, d.url)
	if err != nil {
		return nil, NetworkFailureError(d.url, err)
	}
	defer resp.Body.Close()

	rows, err := readRows(resp.Body)
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, InvalidFormatError(d.url, err)
		}
		return nil, NetworkFailureError(d.url, err)
	}

	var dogs []dog.Dog
	for i, row := range rows {
		dg, err := dog.FromRow(row)
		if err != nil {
			// header is line 1
			err = fmt.Errorf("line %d: %w", i+2, err)
			return nil, InvalidFormatError(d.url, err)
		}
		dogs = append(dogs, dg)
	}

	res, err := dog.NewCollection(dogs)
	if err != nil {
		return nil, err
	}

	slog.Debug("Dog data retrieved", "url", d.url, "records", res.Len())
	return res, nil
}

// readRows parses CSV text with a header line into rows keyed by column
// name. A UTF-8 byte order mark in front of the header is ignored.
// Short rows only contain the columns they have values for.
func readRows(r io.Reader) ([]map[string]string, error) {
	br := bufio.NewReader(r)
	if pre, err := br.Peek(len(bom)); err == nil && bytes.Equal(pre, bom) {
		if _, err = br.Discard(len(bom)); err != nil {
			return nil, err
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var res []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, v := range record {
			if i >= len(header) {
				break
			}
			row[header[i]] = v
		}
		res = append(res, row)
	}
	return res, nil
}
