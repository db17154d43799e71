package sequence

import (
	"slices"
	"strings"
	"time"

	"github.com/ezrec/keyer/channel"
	"github.com/ezrec/keyer/fault"
)

const (
	DEFAULT_UNIT = 500 * time.Millisecond // Unit of a sequence built without a rate.
)

// Sequence is a compiled, replayable symbol string.
//
// The symbol string and its steps are only ever set together; use
// WithSymbols to derive a sequence for different symbols.
type Sequence struct {
	Name    string          // Optional label, used in logs and errors.
	Unit    time.Duration   // Length of one timing unit for real-time playback.
	Loop    bool            // If set, playback restarts after the last step.
	Channel channel.Channel // Optional bound channel.

	symbols string
	steps   []Step
}

// New compiles symbols into a sequence with the default unit.
func New(symbols string) (seq *Sequence, err error) {
	steps, err := Compile(symbols)
	if err != nil {
		return
	}

	seq = &Sequence{
		Unit:    DEFAULT_UNIT,
		symbols: symbols,
		steps:   steps,
	}
	return
}

// WithSymbols returns a copy of the sequence compiled from new symbols.
func (seq *Sequence) WithSymbols(symbols string) (out *Sequence, err error) {
	steps, err := Compile(symbols)
	if err != nil {
		return
	}

	dup := *seq
	dup.symbols = symbols
	dup.steps = steps
	out = &dup
	return
}

// Symbols returns the symbol string.
func (seq *Sequence) Symbols() string {
	return seq.symbols
}

// Steps returns a copy of the compiled steps.
func (seq *Sequence) Steps() []Step {
	return slices.Clone(seq.steps)
}

// Len returns the number of steps.
func (seq *Sequence) Len() int {
	return len(seq.steps)
}

// Step returns the step at index.
func (seq *Sequence) Step(index int) Step {
	return seq.steps[index]
}

// Duration returns the real-time length of one pass at the sequence's unit.
func (seq *Sequence) Duration() time.Duration {
	return time.Duration(len(seq.steps)) * seq.Unit
}

// String shows letter gaps as a space and word gaps as three spaces.
func (seq *Sequence) String() string {
	return strings.NewReplacer("_", " ", "|", "   ").Replace(seq.symbols)
}

// UnitFromRate converts beats per second into the length of one unit.
func UnitFromRate(bps float64) (unit time.Duration, err error) {
	if !(bps > 0) {
		err = fault.InvalidConfiguration("bps", bps)
		return
	}

	unit = time.Duration(float64(time.Second) / bps)
	return
}
