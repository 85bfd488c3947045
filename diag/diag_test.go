package diag

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnf(t *testing.T) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	SetOutput(buffer)
	defer SetOutput(os.Stdout)

	Warnf("unmapped read at %08x", 0x1ff00000)

	assert.Equal("[Warning] unmapped read at 1ff00000\n", buffer.String())
}

func TestPrintf(t *testing.T) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	SetOutput(buffer)
	defer SetOutput(os.Stdout)

	Printf("image ready")

	assert.Equal("image ready\n", buffer.String())
}

func TestPanicf(t *testing.T) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	SetOutput(buffer)
	defer SetOutput(os.Stdout)

	status := -1
	exit = func(code int) { status = code }
	defer func() { exit = os.Exit }()

	Panicf("couldn't read %v", "missing.3ds")

	assert.Equal(1, status)
	assert.Equal("[FATAL] couldn't read missing.3ds\n", buffer.String())
}

func TestDebugf(t *testing.T) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	SetOutput(buffer)
	defer SetOutput(os.Stdout)

	Debugf("tick %d", 42)

	if debugEnabled {
		assert.Equal("tick 42\n", buffer.String())
	} else {
		assert.Equal("", buffer.String())
	}
}

func TestSeverityString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Fatal", Fatal.String())
	assert.Equal("Warning", Warning.String())
	assert.Equal("Debug", Debug.String())
}
