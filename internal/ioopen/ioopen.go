// Package ioopen opens files with the default application of the
// operating system.
package ioopen

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/pkg/errcode"
)

// Open starts the default viewer for path and does not wait for it.
func Open(path string) error {
	name, args := command(runtime.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return OpenFileError(path, err)
	}
	slog.Debug("Opened file", "path", path, "command", name)
	return cmd.Process.Release()
}

func command(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

func OpenFileError(path string, err error) error {
	msg := "Cannot open <em>%s</em> with the default viewer"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OpenFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn.Name(), path, err),
	}
}
