package tablegen

import (
	"github.com/bamboo-emu/bamboo/translate"
)

var f = translate.From

type ErrExprNotInt string

func (err ErrExprNotInt) Error() string {
	return f("'%v' does not yield an integer", string(err))
}
