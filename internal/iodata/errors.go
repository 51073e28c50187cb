package iodata

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/pkg/errcode"
)

func NetworkFailureError(url string, err error) error {
	msg := "Cannot download dog data from <em>%s</em>"
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

func InvalidFormatError(url string, err error) error {
	msg := "Data at <em>%s</em> is not a valid dog names CSV file"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse %s: %w",
			fn.Name(), url, err),
	}
}
