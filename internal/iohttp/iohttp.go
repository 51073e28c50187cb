// Package iohttp provides an HTTP client for downloads where the timeout
// limits how long a connection may stall, not how long a transfer takes.
// This is an impure I/O package.
package iohttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"
)

// ErrStalled is the cause of a canceled download when no bytes arrived
// during the timeout.
var ErrStalled = errors.New("no data received within timeout")

// Client makes GET requests. Connecting, TLS handshake, waiting for
// response headers and every gap between body reads are limited by the
// same timeout. A slow but steady transfer is never interrupted.
type Client struct {
	timeout time.Duration
	client  *http.Client
}

// New creates a Client with the given stall timeout.
func New(timeout time.Duration) *Client {
	dialer := &net.Dialer{Timeout: timeout}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}
	res := &Client{
		timeout: timeout,
		client:  &http.Client{Transport: transport},
	}
	return res
}

// Get sends a GET request. Statuses other than 2xx are errors.
// The caller must close the response body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	ctx, cancel := context.WithCancelCause(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel(nil)
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		cancel(nil)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		cancel(nil)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	resp.Body = newIdleReader(ctx, resp.Body, c.timeout, cancel)
	return resp, nil
}

// idleReader cancels the request when Read gets no data for timeout.
type idleReader struct {
	ctx     context.Context
	body    io.ReadCloser
	timeout time.Duration
	timer   *time.Timer
	cancel  context.CancelCauseFunc
	once    sync.Once
}

func newIdleReader(
	ctx context.Context,
	body io.ReadCloser,
	timeout time.Duration,
	cancel context.CancelCauseFunc,
) *idleReader {
	res := &idleReader{
		ctx:     ctx,
		body:    body,
		timeout: timeout,
		cancel:  cancel,
	}
	res.timer = time.AfterFunc(timeout, func() { cancel(ErrStalled) })
	return res
}

func (r *idleReader) Read(p []byte) (int, error) {
	n, err := r.body.Read(p)
	if n > 0 {
		r.timer.Reset(r.timeout)
	}
	if err != nil && err != io.EOF {
		if cause := context.Cause(r.ctx); cause != nil {
			err = fmt.Errorf("%w: %w", cause, err)
		}
	}
	return n, err
}

func (r *idleReader) Close() error {
	var err error
	r.once.Do(func() {
		r.timer.Stop()
		err = r.body.Close()
		r.cancel(nil)
	})
	return err
}
