package morse

import (
	"strings"

	"github.com/ezrec/keyer/fault"
	"github.com/ezrec/keyer/sequence"
)

// Policy selects how characters missing from the table are handled.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	POLICY_SKIP = Policy(0) // skip
	POLICY_FAIL = Policy(1) // fail
)

var (
	letterGap = string(sequence.SYMBOL_LETTER_GAP)
	wordGap   = string(sequence.SYMBOL_WORD_GAP)
)

// ParsePolicy converts a policy name to a Policy.
func ParsePolicy(name string) (policy Policy, ok bool) {
	switch strings.ToLower(name) {
	case "", POLICY_SKIP.String():
		policy, ok = POLICY_SKIP, true
	case POLICY_FAIL.String():
		policy, ok = POLICY_FAIL, true
	}
	return
}

// Encode converts text into a symbol string.
//
// Words are separated by whitespace. Letters within a word are joined by the
// letter gap, words by the word gap. Only ASCII letters are case folded.
// Characters and words producing no code are dropped in POLICY_SKIP; in
// POLICY_FAIL the first one is an error, naming the rune as written.
func Encode(text string, policy Policy) (symbols string, err error) {
	var words []string
	for _, word := range strings.Fields(text) {
		var letters []string
		for _, r := range word {
			code, ok := Lookup(r)
			if !ok {
				if policy == POLICY_FAIL {
					err = fault.UnsupportedCharacter(r)
					return
				}
				continue
			}
			letters = append(letters, code)
		}
		if len(letters) == 0 {
			continue
		}
		words = append(words, strings.Join(letters, letterGap))
	}

	symbols = strings.Join(words, wordGap)
	return
}
