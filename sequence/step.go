package sequence

// Step is a single unit-length instruction for a channel.
type Step int

//go:generate go tool stringer -linecomment -type=Step
const (
	STEP_ACTIVATE   = Step(0) // activate
	STEP_DEACTIVATE = Step(1) // deactivate
	STEP_HOLD       = Step(2) // hold
)

// Symbol alphabet.
const (
	SYMBOL_DOT        = '.'
	SYMBOL_DASH       = '-'
	SYMBOL_LETTER_GAP = '_'
	SYMBOL_WORD_GAP   = '|'
)

// Unit lengths of each symbol.
const (
	DOT_UNITS        = 2
	DASH_UNITS       = 4
	LETTER_GAP_UNITS = 4
	WORD_GAP_UNITS   = 8
)
