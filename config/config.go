// Package config loads the YAML configuration of the keyer command.
//
//	bps: 8
//	unsupported: skip
//	always_deactivate: false
//	channels:
//	  - name: led0
//	    output: tape
//	    mark: "#"
//	    space: "."
//	  - name: spk
//	    output: sidetone
//	    frequency: 700
//	sequences:
//	  - name: sos
//	    text: SOS
//	    channel: led0
//	    loop: true
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/keyer/fault"
	"github.com/ezrec/keyer/morse"
	"github.com/ezrec/keyer/score"
)

// Channel outputs.
const (
	OUTPUT_TAPE     = "tape"     // Mark/space bytes on stdout.
	OUTPUT_SIDETONE = "sidetone" // Audio tone.
	OUTPUT_TRACE    = "trace"    // Recorded and dumped when playback ends.
)

// Channel describes one output channel.
type Channel struct {
	Name      string  `yaml:"name"`
	Output    string  `yaml:"output"`
	Mark      string  `yaml:"mark,omitempty"`
	Space     string  `yaml:"space,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`
}

// Config of a multi-sequence run. AlwaysDeactivate idles every channel once
// when the run ends.
type Config struct {
	score.Score `yaml:",inline"`

	Unsupported      string    `yaml:"unsupported,omitempty"`
	AlwaysDeactivate bool      `yaml:"always_deactivate,omitempty"`
	Verbose          bool      `yaml:"verbose,omitempty"`
	Channels         []Channel `yaml:"channels"`
}

// Load reads and validates a configuration file.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	cfg, err = Parse(data)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	return
}

// Parse decodes and validates a configuration. Unknown keys are rejected.
func Parse(data []byte) (cfg *Config, err error) {
	cfg = &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	if cfg.Rate == 0 {
		cfg.Rate = score.DEFAULT_RATE
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
		return
	}

	return
}

// Policy returns the unsupported character policy.
func (cfg *Config) Policy() morse.Policy {
	policy, _ := morse.ParsePolicy(cfg.Unsupported)
	return policy
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() (err error) {
	if !(cfg.Rate > 0) {
		err = fault.InvalidConfiguration("bps", cfg.Rate)
		return
	}

	if _, ok := morse.ParsePolicy(cfg.Unsupported); !ok {
		err = ErrPolicy(cfg.Unsupported)
		return
	}

	names := map[string]bool{}
	for _, ch := range cfg.Channels {
		if ch.Name == "" {
			err = ErrChannelName
			return
		}
		if names[ch.Name] {
			err = ErrChannelDuplicate(ch.Name)
			return
		}
		names[ch.Name] = true

		switch ch.Output {
		case OUTPUT_TAPE, OUTPUT_TRACE:
			if len(ch.Mark) > 1 || len(ch.Space) > 1 {
				err = ErrChannelMark(ch.Name)
				return
			}
		case OUTPUT_SIDETONE:
			if ch.Frequency < 0 {
				err = ErrChannelFrequency(ch.Name)
				return
			}
		default:
			err = ErrChannelOutput(ch.Output)
			return
		}
	}

	for n := range cfg.Entries {
		entry := &cfg.Entries[n]
		err = entry.Validate()
		if err != nil {
			return
		}
		if !names[entry.Channel] {
			err = &score.ErrEntry{Name: entry.Name, Err: ErrChannelMissing(entry.Channel)}
			return
		}
	}

	return
}
