package logs

import (
	"io"

	"github.com/mattn/go-colorable"
)

type Writer io.Writer

// Writer is stderr, translating ANSI escapes on consoles that need it.
func (Module) Writer() Writer {
	return colorable.NewColorableStderr()
}
