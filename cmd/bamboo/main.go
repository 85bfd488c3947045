// Package main implements the bootstrap for the bamboo handheld-console
// emulator: pick an image path, load it fully, and hand off.
package main

import (
	"os"

	"github.com/bamboo-emu/bamboo/diag"
	"github.com/bamboo-emu/bamboo/rom"
)

// Substituted when no image path is given on the command line.
const defaultImage = "Metroid Prime - Federation Force (Europe) (En,Fr,De,Es,It).3ds"

func main() {
	path := defaultImage
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	image := rom.Load(path)
	diag.Debugf("image: %v bytes", len(image))
}
