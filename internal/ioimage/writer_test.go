package ioimage

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fullDisk struct{}

func (fullDisk) Write(_ []byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestFileWriterMarksDiskErrors(t *testing.T) {
	_, err := io.Copy(&fileWriter{fullDisk{}}, strings.NewReader("woof"))

	var werr *writeError
	assert.True(t, errors.As(err, &werr))
	assert.Contains(t, err.Error(), "no space left")
}

func TestFileWriterKeepsReadErrors(t *testing.T) {
	var sb strings.Builder
	r := io.MultiReader(strings.NewReader("wo"), failingReader{})
	n, err := io.Copy(&fileWriter{&sb}, r)

	var werr *writeError
	assert.False(t, errors.As(err, &werr))
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "wo", sb.String())
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}
