// Package player plays a single sequence in real time.
//
// The player walks the symbol string itself rather than the compiled steps,
// sleeping between channel actions. Only one sequence plays at a time and the
// calling goroutine is blocked for the whole duration.
package player

import (
	"context"
	"log"
	"time"

	"github.com/ezrec/keyer/channel"
	"github.com/ezrec/keyer/fault"
	"github.com/ezrec/keyer/sequence"
)

// Units waited for each symbol.
const (
	DOT_ON_UNITS  = 1
	DASH_ON_UNITS = 3
	ELEMENT_UNITS = 1 // Silence after a dot or dash.
	LETTER_UNITS  = 3
	WORD_UNITS    = 7
)

// SleepFunc blocks for d, or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc, backed by a timer.
func Sleep(ctx context.Context, d time.Duration) (err error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-timer.C:
	}

	return
}

// Player is the real-time single sequence player.
type Player struct {
	Verbose          bool      // If set, logs each symbol played.
	AlwaysDeactivate bool      // If set, deactivate after letter and word gaps as well.
	Sleep            SleepFunc // Wait implementation; nil uses Sleep.
}

// Play plays seq on ch, or on the sequence's bound channel if ch is nil.
func (pl *Player) Play(ctx context.Context, seq *sequence.Sequence, ch channel.Channel) (err error) {
	if ch == nil {
		ch = seq.Channel
	}
	if pl.Verbose {
		log.Printf("player: %v %v", seq.Name, seq)
	}
	return pl.PlaySymbols(ctx, seq.Symbols(), seq.Unit, ch)
}

// PlaySymbols plays a raw symbol string on ch at unit.
//
// A bad symbol stops playback where it is found; the channel is left in
// whatever state the preceding symbols put it.
func (pl *Player) PlaySymbols(ctx context.Context, symbols string, unit time.Duration, ch channel.Channel) (err error) {
	err = channel.Check(ch)
	if err != nil {
		return
	}

	if len(symbols) == 0 {
		return
	}

	if !(unit > 0) {
		err = fault.InvalidConfiguration("unit", unit.Seconds())
		return
	}

	sleep := pl.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	wait := func(units int) error {
		return sleep(ctx, time.Duration(units)*unit)
	}

	for offset, r := range symbols {
		if pl.Verbose {
			log.Printf("player: %d %q", offset, r)
		}

		switch r {
		case sequence.SYMBOL_DOT, sequence.SYMBOL_DASH:
			units := DOT_ON_UNITS
			if r == sequence.SYMBOL_DASH {
				units = DASH_ON_UNITS
			}
			ch.Activate()
			err = wait(units)
			if err != nil {
				return
			}
			ch.Deactivate()
			err = wait(ELEMENT_UNITS)
		case sequence.SYMBOL_LETTER_GAP, sequence.SYMBOL_WORD_GAP:
			units := LETTER_UNITS
			if r == sequence.SYMBOL_WORD_GAP {
				units = WORD_UNITS
			}
			err = wait(units)
			if err == nil && pl.AlwaysDeactivate {
				ch.Deactivate()
			}
		default:
			err = fault.BadSequence(r, offset, symbols)
		}
		if err != nil {
			return
		}
	}

	return
}
