package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/keyer/fault"
	"github.com/ezrec/keyer/morse"
	"github.com/ezrec/keyer/score"
)

func doParse(lines []string) (*Config, error) {
	return Parse([]byte(strings.Join(lines, "\n")))
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	cfg, err := doParse([]string{
		`bps: 8`,
		`unsupported: fail`,
		`always_deactivate: true`,
		`channels:`,
		`  - name: led0`,
		`    output: tape`,
		`    mark: "1"`,
		`    space: "0"`,
		`  - name: spk`,
		`    output: sidetone`,
		`    frequency: 600`,
		`sequences:`,
		`  - name: sos`,
		`    text: SOS`,
		`    channel: led0`,
		`    loop: true`,
		`  - name: raw`,
		`    symbols: "...---..."`,
		`    channel: spk`,
	})
	assert.NoError(err)

	assert.Equal(8.0, cfg.Rate)
	assert.Equal(morse.POLICY_FAIL, cfg.Policy())
	assert.True(cfg.AlwaysDeactivate)
	assert.False(cfg.Verbose)
	assert.Equal([]Channel{
		{Name: "led0", Output: OUTPUT_TAPE, Mark: "1", Space: "0"},
		{Name: "spk", Output: OUTPUT_SIDETONE, Frequency: 600},
	}, cfg.Channels)
	assert.Equal([]score.Entry{
		{Name: "sos", Text: "SOS", Channel: "led0", Loop: true},
		{Name: "raw", Symbols: "...---...", Channel: "spk"},
	}, cfg.Entries)

	seqs, err := cfg.Build(cfg.Policy())
	assert.NoError(err)
	assert.Len(seqs, 2)
	assert.Equal("..._---_...", seqs[0].Symbols())
}

func TestParse_Defaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse(nil)
	assert.NoError(err)
	assert.Equal(float64(score.DEFAULT_RATE), cfg.Rate)
	assert.Equal(morse.POLICY_SKIP, cfg.Policy())
	assert.Empty(cfg.Channels)
	assert.Empty(cfg.Entries)
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Lines []string
		Is    error
		As    any
	}){
		{Lines: []string{`bps: -1`}, Is: fault.ErrInvalidConfiguration},
		{Lines: []string{`unsupported: ignore`}, As: new(ErrPolicy)},
		{Lines: []string{`channels:`, `  - output: tape`}, Is: ErrChannelName},
		{Lines: []string{`channels:`, `  - {name: a, output: tape}`, `  - {name: a, output: trace}`}, As: new(ErrChannelDuplicate)},
		{Lines: []string{`channels:`, `  - {name: a, output: gpio}`}, As: new(ErrChannelOutput)},
		{Lines: []string{`channels:`, `  - {name: a, output: tape, mark: "##"}`}, As: new(ErrChannelMark)},
		{Lines: []string{`channels:`, `  - {name: a, output: sidetone, frequency: -5}`}, As: new(ErrChannelFrequency)},
		{Lines: []string{`sequences:`, `  - {name: s, text: sos, channel: led}`}, As: new(ErrChannelMissing)},
		{Lines: []string{`channels: [{name: a, output: tape}]`, `sequences:`, `  - {name: s, channel: a}`}, Is: score.ErrEntrySource},
		{Lines: []string{`channels: [{name: a, output: tape}]`, `sequences:`, `  - {name: s, symbols: "x", channel: a}`}, Is: fault.ErrBadSequence},
		{Lines: []string{`tempo: 3`}},
		{Lines: []string{`bps: [`}},
	}

	for _, tc := range table {
		cfg, err := doParse(tc.Lines)
		assert.Nil(cfg, tc.Lines)
		assert.Error(err, tc.Lines)
		if tc.Is != nil {
			assert.ErrorIs(err, tc.Is, tc.Lines)
		}
		if tc.As != nil {
			assert.ErrorAs(err, tc.As, tc.Lines)
		}
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "keyer.yaml")
	err := os.WriteFile(path, []byte("bps: 5\nchannels: [{name: a, output: trace}]\n"), 0o644)
	assert.NoError(err)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(5.0, cfg.Rate)

	bad := filepath.Join(dir, "bad.yaml")
	err = os.WriteFile(bad, []byte("bps: 0.0\nunsupported: maybe\n"), 0o644)
	assert.NoError(err)

	_, err = Load(bad)
	var cerr *ErrConfig
	assert.True(errors.As(err, &cerr))
	assert.Equal(bad, cerr.Path)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
