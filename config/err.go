package config

import (
	"errors"

	"github.com/ezrec/keyer/translate"
)

var f = translate.From

var (
	ErrChannelName = errors.New(f("channel name missing"))
)

type ErrPolicy string

func (err ErrPolicy) Error() string {
	return f("unsupported policy %q unknown", string(err))
}

type ErrChannelDuplicate string

func (err ErrChannelDuplicate) Error() string {
	return f("channel %v duplicated", string(err))
}

type ErrChannelOutput string

func (err ErrChannelOutput) Error() string {
	return f("channel output %q unknown", string(err))
}

type ErrChannelMark string

func (err ErrChannelMark) Error() string {
	return f("channel %v mark and space must be single bytes", string(err))
}

type ErrChannelFrequency string

func (err ErrChannelFrequency) Error() string {
	return f("channel %v frequency negative", string(err))
}

type ErrChannelMissing string

func (err ErrChannelMissing) Error() string {
	return f("channel %q not defined", string(err))
}

// ErrConfig locates a configuration failure in its file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
