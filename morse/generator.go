package morse

import (
	"time"

	"github.com/ezrec/keyer/sequence"
)

const (
	DEFAULT_RATE = 3 // Default generator rate, in beats per second.
)

// Generator builds playable sequences from text at a fixed unit.
type Generator struct {
	Unit   time.Duration
	Policy Policy
}

// NewGenerator creates a generator for a rate in beats per second.
func NewGenerator(bps float64) (gen *Generator, err error) {
	unit, err := sequence.UnitFromRate(bps)
	if err != nil {
		return
	}

	gen = &Generator{Unit: unit}
	return
}

// Generate encodes text and compiles it into a sequence.
func (gen *Generator) Generate(text string) (seq *sequence.Sequence, err error) {
	symbols, err := Encode(text, gen.Policy)
	if err != nil {
		return
	}

	seq, err = sequence.New(symbols)
	if err != nil {
		return
	}

	seq.Unit = gen.Unit
	return
}
