package rom

import (
	"github.com/bamboo-emu/bamboo/translate"
)

var f = translate.From

// ErrImageRead indicates the image file could not be opened or read.
type ErrImageRead struct {
	Path string
	Err  error
}

func (err *ErrImageRead) Error() string {
	return f("reading image %v: %v", err.Path, err.Err)
}

func (err *ErrImageRead) Unwrap() error {
	return err.Err
}
