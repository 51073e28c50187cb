package ioimage

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/pkg/errcode"
)

func NetworkFailureError(url string, err error) error {
	msg := "Cannot download from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NetworkFailureError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot get %s: %w",
			fn.Name(), url, err),
	}
}

func InvalidListError(url string, err error) error {
	msg := "Cannot read the list of dog pictures from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot decode %s: %w",
			fn.Name(), url, err),
	}
}

func SizeMismatchError(url string, expected, got int64) error {
	msg := "Picture <em>%s</em> has %d bytes, but %d were downloaded"
	vars := []any{url, expected, got}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SizeMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: could not download file %s, "+
			"file is %d bytes, got %d", fn.Name(), url, expected, got),
	}
}

func WriteFileError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write %s: %w",
			fn.Name(), path, err),
	}
}
