package iohttp_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gnames/wuff/internal/iohttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drip writes parts bytes chunks with pause between them.
func drip(parts int, pause time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		for range parts {
			_, _ = w.Write([]byte("0123456789"))
			w.(http.Flusher).Flush()
			select {
			case <-time.After(pause):
			case <-r.Context().Done():
				return
			}
		}
	}
}

func serve(t *testing.T, h http.Handler) *httptest.Server {
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestGetSlowTransfer(t *testing.T) {
	// total time is well above the timeout, every gap is below it
	ts := serve(t, drip(8, 60*time.Millisecond))
	c := iohttp.New(200 * time.Millisecond)

	resp, err := c.Get(context.Background(), ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Len(t, body, 80)
}

func TestGetStalledTransfer(t *testing.T) {
	ts := serve(t, drip(3, 2*time.Second))
	c := iohttp.New(200 * time.Millisecond)

	resp, err := c.Get(context.Background(), ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	start := time.Now()
	body, err := io.ReadAll(resp.Body)
	require.Error(t, err)
	assert.True(t, errors.Is(err, iohttp.ErrStalled), "got %v", err)
	assert.Len(t, body, 10)
	assert.Less(t, time.Since(start), 1500*time.Millisecond)
}

func TestGetSlowHeaders(t *testing.T) {
	ts := serve(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	c := iohttp.New(200 * time.Millisecond)

	_, err := c.Get(context.Background(), ts.URL)
	assert.Error(t, err)
}

func TestGetStatus(t *testing.T) {
	ts := serve(t, http.NotFoundHandler())
	c := iohttp.New(time.Second)

	_, err := c.Get(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetCanceled(t *testing.T) {
	ts := serve(t, drip(1, 0))
	c := iohttp.New(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, ts.URL)
	assert.Error(t, err)
}
