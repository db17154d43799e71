// Package morse encodes text into symbol strings using the international
// Morse alphabet for letters and digits.
package morse

import (
	"iter"
)

// symbolTable maps lowercase letters and digits to their dot/dash code.
var symbolTable = map[rune]string{
	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..",
	'e': ".", 'f': "..-.", 'g': "--.", 'h': "....",
	'i': "..", 'j': ".---", 'k': "-.-", 'l': ".-..",
	'm': "--", 'n': "-.", 'o': "---", 'p': ".--.",
	'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
	'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-",
	'y': "-.--", 'z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--",
	'4': "....-", '5': ".....", '6': "-....", '7': "--...",
	'8': "---..", '9': "----.",
}

// symbolOrder is the iteration order of the table.
const symbolOrder = "abcdefghijklmnopqrstuvwxyz0123456789"

// Lookup returns the code for r, ignoring ASCII case. Only ASCII letters
// are folded, so no other script maps onto the table.
func Lookup(r rune) (code string, ok bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	code, ok = symbolTable[r]
	return
}

// Symbols iterates the table, letters first.
func Symbols() iter.Seq2[rune, string] {
	return func(yield func(r rune, code string) bool) {
		for _, r := range symbolOrder {
			if !yield(r, symbolTable[r]) {
				return
			}
		}
	}
}
