// Package score loads sets of sequences to be played together.
//
// A score is a Starlark program. Three builtins are predeclared:
//
//	bps(rate)                 set the tick rate, in beats per second
//	encode(text)              return the symbol string for text
//	sequence(name, text=, symbols=, channel=, loop=False)
//
// Every call to sequence() appends an entry. Exactly one of text and symbols
// must be given.
package score

import (
	"io"
	"log"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/keyer/fault"
	"github.com/ezrec/keyer/morse"
	"github.com/ezrec/keyer/sequence"
)

const (
	DEFAULT_RATE = 3 // Rate of a score that never calls bps().
)

// Entry declares one sequence of a score.
type Entry struct {
	Name    string `yaml:"name"`
	Text    string `yaml:"text,omitempty"`
	Symbols string `yaml:"symbols,omitempty"`
	Channel string `yaml:"channel"`
	Loop    bool   `yaml:"loop,omitempty"`
}

// Score is a rate plus the sequences to play at that rate.
type Score struct {
	Rate    float64 `yaml:"bps"`
	Entries []Entry `yaml:"sequences"`
}

// Validate checks that an entry names exactly one valid source.
func (entry *Entry) Validate() (err error) {
	if entry.Name == "" {
		err = ErrEntryName
		return
	}
	if (entry.Text == "") == (entry.Symbols == "") {
		err = &ErrEntry{Name: entry.Name, Err: ErrEntrySource}
		return
	}
	if entry.Symbols != "" {
		err = sequence.Validate(entry.Symbols)
		if err != nil {
			err = &ErrEntry{Name: entry.Name, Err: err}
			return
		}
	}
	return
}

// Compile encodes and compiles the entry. The channel is left unbound.
func (entry *Entry) Compile(policy morse.Policy) (seq *sequence.Sequence, err error) {
	defer func() {
		if err != nil {
			err = &ErrEntry{Name: entry.Name, Err: err}
		}
	}()

	symbols := entry.Symbols
	if entry.Text != "" {
		symbols, err = morse.Encode(entry.Text, policy)
		if err != nil {
			return
		}
	}

	seq, err = sequence.New(symbols)
	if err != nil {
		return
	}

	seq.Name = entry.Name
	seq.Loop = entry.Loop
	return
}

// Build compiles every entry, with units set from the score's rate.
func (sc *Score) Build(policy morse.Policy) (seqs []*sequence.Sequence, err error) {
	rate := sc.Rate
	if rate == 0 {
		rate = DEFAULT_RATE
	}
	unit, err := sequence.UnitFromRate(rate)
	if err != nil {
		return
	}

	for n := range sc.Entries {
		var seq *sequence.Sequence
		seq, err = sc.Entries[n].Compile(policy)
		if err != nil {
			seqs = nil
			return
		}
		seq.Unit = unit
		seqs = append(seqs, seq)
	}

	return
}

// Load reads a score script from a file.
func Load(path string) (sc *Score, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Parse(path, inf)
}

// Parse executes a score script.
func Parse(filename string, src io.Reader) (sc *Score, err error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return
	}

	sc = &Score{Rate: DEFAULT_RATE}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("score: %v: %v", filename, msg)
		},
	}

	predeclared := starlark.StringDict{
		"bps":      starlark.NewBuiltin("bps", sc.builtinRate),
		"encode":   starlark.NewBuiltin("encode", builtinEncode),
		"sequence": starlark.NewBuiltin("sequence", sc.builtinSequence),
	}

	opts := syntax.FileOptions{TopLevelControl: true}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, data, predeclared)
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
		sc = nil
		return
	}

	return
}

func (sc *Score) builtinRate(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Value
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value)
	if err != nil {
		return nil, err
	}

	rate, ok := starlark.AsFloat(value)
	if !ok {
		return nil, ErrRateType
	}
	if !(rate > 0) {
		return nil, fault.InvalidConfiguration("bps", rate)
	}

	sc.Rate = rate
	return starlark.None, nil
}

func builtinEncode(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	var fail bool
	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "text", &text, "fail?", &fail)
	if err != nil {
		return nil, err
	}

	policy := morse.POLICY_SKIP
	if fail {
		policy = morse.POLICY_FAIL
	}

	symbols, err := morse.Encode(text, policy)
	if err != nil {
		return nil, err
	}

	return starlark.String(symbols), nil
}

func (sc *Score) builtinSequence(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var entry Entry
	err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"name", &entry.Name,
		"text?", &entry.Text,
		"symbols?", &entry.Symbols,
		"channel?", &entry.Channel,
		"loop?", &entry.Loop,
	)
	if err != nil {
		return nil, err
	}

	err = entry.Validate()
	if err != nil {
		return nil, err
	}

	sc.Entries = append(sc.Entries, entry)
	return starlark.None, nil
}
