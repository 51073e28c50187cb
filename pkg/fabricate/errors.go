package fabricate

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/wuff/pkg/errcode"
)

func NoDogsError(sex string, year int) error {
	msg := "No <em>%s</em> dogs found to make up a new dog"
	vars := []any{sex}
	if year > 0 {
		msg = "No <em>%s</em> dogs found for year <em>%d</em>"
		vars = append(vars, year)
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoMatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no dogs of sex %s, year %d",
			fn.Name(), sex, year),
	}
}

func NoImagesError() error {
	msg := "No dog pictures with allowed extensions are available"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoMatchError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: empty picture list", fn.Name()),
	}
}
