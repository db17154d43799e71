package score

import (
	"errors"

	"github.com/ezrec/keyer/translate"
)

var f = translate.From

var (
	ErrEntryName   = errors.New(f("sequence name missing"))
	ErrEntrySource = errors.New(f("exactly one of text or symbols required"))
	ErrRateType    = errors.New(f("bps must be a number"))
)

// ErrEntry locates a failure in a named score entry.
type ErrEntry struct {
	Name string
	Err  error
}

func (err *ErrEntry) Error() string {
	return f("sequence %q %v", err.Name, err.Err)
}

func (err *ErrEntry) Unwrap() error {
	return err.Err
}

// ErrScript is a failure while executing a score script.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
