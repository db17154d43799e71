package sequence

import (
	"iter"
	"slices"

	"github.com/ezrec/keyer/fault"
	"github.com/ezrec/keyer/internal"
)

// expansion of each symbol into its steps.
var expansion = map[rune][]Step{
	SYMBOL_DOT:        {STEP_ACTIVATE, STEP_DEACTIVATE},
	SYMBOL_DASH:       {STEP_ACTIVATE, STEP_HOLD, STEP_HOLD, STEP_DEACTIVATE},
	SYMBOL_LETTER_GAP: slices.Collect(internal.IterRepeat(STEP_HOLD, LETTER_GAP_UNITS)),
	SYMBOL_WORD_GAP:   slices.Collect(internal.IterRepeat(STEP_HOLD, WORD_GAP_UNITS)),
}

// Valid reports whether r is in the symbol alphabet.
func Valid(r rune) (ok bool) {
	_, ok = expansion[r]
	return
}

// Validate checks that symbols only contains the symbol alphabet.
func Validate(symbols string) (err error) {
	for offset, r := range symbols {
		if !Valid(r) {
			err = fault.BadSequence(r, offset, symbols)
			return
		}
	}
	return
}

// Expand returns the steps of a symbol string, without validation. Runes
// outside the alphabet produce no steps.
func Expand(symbols string) iter.Seq[Step] {
	var seqs []iter.Seq[Step]
	for _, r := range symbols {
		seqs = append(seqs, slices.Values(expansion[r]))
	}
	return internal.IterSeqConcat(seqs...)
}

// Compile expands a symbol string into its step list.
func Compile(symbols string) (steps []Step, err error) {
	err = Validate(symbols)
	if err != nil {
		return
	}

	steps = slices.Collect(Expand(symbols))
	return
}

// Units returns the duration of a symbol string in timing units.
func Units(symbols string) (units int, err error) {
	err = Validate(symbols)
	if err != nil {
		return
	}

	for _, r := range symbols {
		units += len(expansion[r])
	}
	return
}
