package rom

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bamboo-emu/bamboo/diag"
)

func writeImage(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, data, 0o644)
	assert.NoError(t, err)

	return path
}

func TestRead(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(1))
	several := make([]byte, 3<<20)
	rng.Read(several)

	table := [](struct {
		name string
		data []byte
	}){
		{"empty", []byte{}},
		{"single", []byte{0x1a}},
		{"control_bytes", []byte{0x00, 0x0a, 0x0d, 0x1a, 0xff}},
		{"several_megabytes", several},
	}

	for _, entry := range table {
		path := writeImage(t, entry.name+".3ds", entry.data)

		image, err := Read(path)
		assert.NoError(err, entry.name)
		assert.Equal(len(entry.data), len(image), entry.name)
		assert.True(bytes.Equal(entry.data, image), entry.name)
	}
}

func TestReadMissing(t *testing.T) {
	assert := assert.New(t)

	image, err := Read(filepath.Join(t.TempDir(), "no-such-image.3ds"))

	assert.Nil(image)
	assert.Error(err)
	assert.ErrorIs(err, os.ErrNotExist)

	var readErr *ErrImageRead
	assert.ErrorAs(err, &readErr)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	diag.SetOutput(buffer)
	defer diag.SetOutput(os.Stdout)

	path := writeImage(t, "game.3ds", []byte{0xde, 0xad, 0xbe, 0xef})
	image := Load(path)

	assert.Equal(Image{0xde, 0xad, 0xbe, 0xef}, image)
	assert.Equal(path+" loaded successfully\n", buffer.String())
}

func TestBits(t *testing.T) {
	assert := assert.New(t)

	image := Image{0b1010_0001, 0xff}

	var got []bool
	for bit := range image.Bits() {
		got = append(got, bit)
	}

	want := []bool{
		true, false, false, false, false, true, false, true,
		true, true, true, true, true, true, true, true,
	}
	assert.Equal(want, got)

	// early termination
	count := 0
	for range image.Bits() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}
