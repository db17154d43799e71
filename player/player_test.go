package player

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/keyer/channel"
	"github.com/ezrec/keyer/fault"
	"github.com/ezrec/keyer/sequence"
)

const unit = 10 * time.Millisecond

// fakeClock advances a virtual time instead of sleeping.
type fakeClock struct {
	now    time.Duration
	sleeps []time.Duration
}

func (fc *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fc.now += d
	fc.sleeps = append(fc.sleeps, d)
	return nil
}

// units reads the clock in timing units.
func (fc *fakeClock) units() int {
	return int(fc.now / unit)
}

func newRig() (pl *Player, fc *fakeClock, rec *channel.Recorder) {
	fc = &fakeClock{}
	pl = &Player{Sleep: fc.Sleep}
	rec = &channel.Recorder{Clock: fc.units}
	return
}

func TestPlay(t *testing.T) {
	assert := assert.New(t)

	pl, fc, rec := newRig()

	seq, err := sequence.New(".-_.|-")
	assert.NoError(err)
	seq.Unit = unit

	err = pl.Play(context.Background(), seq, rec)
	assert.NoError(err)

	assert.Equal([]channel.Event{
		{At: 0, Level: true}, // .
		{At: 1, Level: false},
		{At: 2, Level: true}, // -
		{At: 5, Level: false},
		{At: 9, Level: true}, // _ .
		{At: 10, Level: false},
		{At: 18, Level: true}, // | -
		{At: 21, Level: false},
	}, rec.Events())
	assert.Equal(22, fc.units())
}

func TestPlay_AlwaysDeactivate(t *testing.T) {
	assert := assert.New(t)

	pl, fc, rec := newRig()
	pl.AlwaysDeactivate = true

	err := pl.PlaySymbols(context.Background(), "_|", unit, rec)
	assert.NoError(err)
	assert.Equal([]channel.Event{
		{At: 3, Level: false},
		{At: 10, Level: false},
	}, rec.Events())
	assert.Equal([]time.Duration{3 * unit, 7 * unit}, fc.sleeps)

	pl.AlwaysDeactivate = false
	rec.Reset()
	err = pl.PlaySymbols(context.Background(), "_|", unit, rec)
	assert.NoError(err)
	assert.Empty(rec.Events())
}

func TestPlay_BoundChannel(t *testing.T) {
	assert := assert.New(t)

	pl, _, rec := newRig()

	seq, err := sequence.New(".")
	assert.NoError(err)
	seq.Unit = unit
	seq.Channel = rec

	err = pl.Play(context.Background(), seq, nil)
	assert.NoError(err)
	assert.Equal("#.", rec.String())

	// An explicit channel overrides the bound one.
	other := &channel.Recorder{}
	err = pl.Play(context.Background(), seq, other)
	assert.NoError(err)
	assert.Equal("#.", other.String())
	assert.Equal("#.", rec.String())
}

func TestPlay_NoFunction(t *testing.T) {
	assert := assert.New(t)

	pl, fc, _ := newRig()

	seq, err := sequence.New("...")
	assert.NoError(err)

	err = pl.Play(context.Background(), seq, nil)
	assert.True(errors.Is(err, fault.ErrNoFunctionDefined))

	err = pl.Play(context.Background(), seq, &channel.Func{On: func() {}})
	assert.True(errors.Is(err, fault.ErrNoFunctionDefined))
	assert.Empty(fc.sleeps)
}

func TestPlay_Empty(t *testing.T) {
	assert := assert.New(t)

	pl, fc, rec := newRig()

	seq, err := sequence.New("")
	assert.NoError(err)

	assert.NoError(pl.Play(context.Background(), seq, rec))
	assert.Empty(rec.Events())
	assert.Empty(fc.sleeps)
}

func TestPlay_BadSequence(t *testing.T) {
	assert := assert.New(t)

	pl, fc, rec := newRig()

	err := pl.PlaySymbols(context.Background(), ".-x.", unit, rec)
	assert.True(errors.Is(err, fault.ErrBadSequence))

	// Symbols before the bad one were played.
	assert.Equal("#.#.", rec.String())
	assert.Equal(6, fc.units())
}

func TestPlay_InvalidUnit(t *testing.T) {
	assert := assert.New(t)

	pl, _, rec := newRig()

	err := pl.PlaySymbols(context.Background(), ".", 0, rec)
	assert.True(errors.Is(err, fault.ErrInvalidConfiguration))
	assert.Empty(rec.Events())
}

func TestPlay_Cancel(t *testing.T) {
	assert := assert.New(t)

	pl, _, rec := newRig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pl.PlaySymbols(ctx, "...", unit, rec)
	assert.ErrorIs(err, context.Canceled)

	// Activated before the first wait; left active.
	assert.Equal("#", rec.String())
}

func TestSleep(t *testing.T) {
	assert := assert.New(t)

	start := time.Now()
	assert.NoError(Sleep(context.Background(), time.Millisecond))
	assert.GreaterOrEqual(time.Since(start), time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(Sleep(ctx, time.Hour), context.Canceled)
}
