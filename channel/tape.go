package channel

import (
	"io"
)

const (
	TAPE_DEFAULT_MARK  = '#'
	TAPE_DEFAULT_SPACE = '.'
)

// Tape writes one byte per transition to Output: Mark when activated,
// Space when deactivated. Repeated calls at the same level are written too.
type Tape struct {
	Output io.Writer
	Mark   byte
	Space  byte

	Active bool  // Current level.
	Err    error // First write error, if any.
}

var _ Channel = (*Tape)(nil)

func (tc *Tape) Activate() {
	mark := tc.Mark
	if mark == 0 {
		mark = TAPE_DEFAULT_MARK
	}
	tc.Active = true
	tc.write(mark)
}

func (tc *Tape) Deactivate() {
	space := tc.Space
	if space == 0 {
		space = TAPE_DEFAULT_SPACE
	}
	tc.Active = false
	tc.write(space)
}

func (tc *Tape) write(b byte) {
	if tc.Output == nil || tc.Err != nil {
		return
	}
	_, tc.Err = tc.Output.Write([]byte{b})
}
