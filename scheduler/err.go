package scheduler

import (
	"github.com/ezrec/keyer/translate"
)

var f = translate.From

// ErrRuntime locates a failure raised by a sequence's channel.
type ErrRuntime struct {
	Name string // Sequence name.
	Tick int    // Scheduler tick of the failure.
	Step int    // Step index within the sequence.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("sequence %q tick %d step %d %v", err.Name, err.Tick, err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
