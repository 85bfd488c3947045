package rom

import (
	"iter"
	"os"

	"github.com/bamboo-emu/bamboo/diag"
)

// Image is a fully loaded binary cartridge image. An empty file yields an
// empty Image, which is a valid degenerate load.
type Image []byte

// Bits iterates over the image LSB-first, for decoders that consume the
// image as a bit stream.
func (image Image) Bits() iter.Seq[bool] {
	return func(yield func(value bool) bool) {
		for _, data := range image {
			for bitpos := range 8 {
				bit := (data & (1 << bitpos)) != 0
				if !yield(bit) {
					return
				}
			}
		}
	}
}

// Read loads the file at path to completion, byte-exact: no text-mode
// translation, no byte filtering. The read is synchronous and unbounded;
// latency scales with the image size.
func Read(path string) (image Image, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrImageRead{Path: path, Err: err}
		return
	}

	image = Image(data)
	return
}

// Load is the default bootstrap behavior: the full image is returned, or
// the process does not continue. On success a confirmation line goes to
// the diagnostic stream.
func Load(path string) Image {
	image, err := Read(path)
	if err != nil {
		diag.Panicf("Couldn't read %v", path)
	}

	diag.Printf("%v loaded successfully", path)
	return image
}
