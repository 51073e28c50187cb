package lifecycle

import (
	"context"

	"github.com/gnames/wuff/pkg/dog"
)

// DataSource provides the dog names registry.
type DataSource interface {
	// Retrieve downloads and parses the registry. Every call goes to the
	// network, callers that need the data more than once should use a cache.
	Retrieve(ctx context.Context) (*dog.Collection, error)
}

// ImageSource provides pictures of dogs.
type ImageSource interface {
	// List returns relative paths of pictures with allowed extensions.
	List(ctx context.Context) ([]string, error)

	// Download saves the picture at relPath to savePath and returns the
	// number of bytes written. The size must match the Content-Length
	// announced by the server.
	Download(ctx context.Context, relPath, savePath string) (int64, error)
}
