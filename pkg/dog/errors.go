package dog

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/pkg/errcode"
)

func MissingFieldError(field string) error {
	msg := "Dataset row has no <em>%s</em> column"
	vars := []any{field}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingFieldError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing required field %q",
			fn.Name(), field),
	}
}

func InvalidValueError(field, value string, err error) error {
	msg := "Cannot use <em>%s</em> as a value of <em>%s</em>"
	vars := []any{value, field}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid value %q of %s: %w",
			fn.Name(), value, field, err),
	}
}

func EmptyDatasetError() error {
	msg := "Dataset does not contain any dogs"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.EmptyDatasetError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: no dog data provided", fn.Name()),
	}
}
