package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/keyer/channel"
	"github.com/ezrec/keyer/config"
	"github.com/ezrec/keyer/scheduler"
	"github.com/ezrec/keyer/score"
	"github.com/ezrec/keyer/sequence"
	"github.com/ezrec/keyer/sidetone"
)

// outputs owns the channels opened for a run.
type outputs struct {
	names    []string
	channels map[string]channel.Channel
	traces   map[string]*channel.Recorder
	tones    []*sidetone.Tone
}

func newOutputs() *outputs {
	return &outputs{
		channels: map[string]channel.Channel{},
		traces:   map[string]*channel.Recorder{},
	}
}

// open creates the channel described by cc.
func (o *outputs) open(cc config.Channel, out io.Writer, clock func() int) (err error) {
	var ch channel.Channel

	switch cc.Output {
	case config.OUTPUT_TAPE:
		ch = &channel.Tape{Output: out, Mark: firstByte(cc.Mark), Space: firstByte(cc.Space)}
	case config.OUTPUT_TRACE:
		rec := &channel.Recorder{Clock: clock}
		o.traces[cc.Name] = rec
		ch = rec
	case config.OUTPUT_SIDETONE:
		var tone *sidetone.Tone
		tone, err = sidetone.Open(cc.Frequency)
		if err != nil {
			return
		}
		o.tones = append(o.tones, tone)
		ch = tone
	default:
		err = config.ErrChannelOutput(cc.Output)
		return
	}

	o.names = append(o.names, cc.Name)
	o.channels[cc.Name] = ch
	return
}

// Close silences and releases every audio device.
func (o *outputs) Close() (err error) {
	var errs []error
	for _, tone := range o.tones {
		tone.Deactivate()
		errs = append(errs, tone.Close())
	}
	return errors.Join(errs...)
}

// timeline renders a recorder as one character per tick.
func timeline(rec *channel.Recorder, ticks int) string {
	var sb strings.Builder

	level := false
	events := rec.Events()
	for tick := range ticks {
		for len(events) > 0 && events[0].At == tick {
			level = events[0].Level
			events = events[1:]
		}
		if level {
			sb.WriteByte(channel.TAPE_DEFAULT_MARK)
		} else {
			sb.WriteByte(channel.TAPE_DEFAULT_SPACE)
		}
	}

	return sb.String()
}

// deactivate idles every channel once.
func (o *outputs) deactivate() {
	for _, name := range o.names {
		o.channels[name].Deactivate()
	}
}

// printTraces writes every trace channel's timeline.
func (o *outputs) printTraces(out io.Writer, ticks int) {
	width := 0
	for name := range o.traces {
		width = max(width, len(name))
	}

	for _, name := range o.names {
		rec, ok := o.traces[name]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%-*s %v\n", width, name, timeline(rec, ticks))
	}
}

// schedule binds every sequence to its channel and runs them together.
func schedule(ctx context.Context, sched *scheduler.Scheduler, o *outputs, seqs []*sequence.Sequence, channels []string) (err error) {
	for n, seq := range seqs {
		seq.Channel = o.channels[channels[n]]
		err = sched.AddSequence(seq)
		if err != nil {
			return
		}
	}

	return sched.Run(ctx)
}

func runCmd(opts *options) *cobra.Command {
	var bps float64

	c := &cobra.Command{
		Use:   "run CONFIG",
		Short: "Play the sequences of a YAML configuration together",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()

			cfg, err := config.Load(args[0])
			if err != nil {
				return
			}
			if bps != 0 {
				cfg.Rate = bps
			}

			seqs, err := cfg.Build(cfg.Policy())
			if err != nil {
				return
			}

			sched, err := scheduler.New(cfg.Rate)
			if err != nil {
				return
			}
			sched.Verbose = opts.verbose || cfg.Verbose

			o := newOutputs()
			defer func() {
				if cerr := o.Close(); err == nil {
					err = cerr
				}
			}()
			for _, cc := range cfg.Channels {
				err = o.open(cc, out, sched.Ticks)
				if err != nil {
					return
				}
			}

			var channels []string
			for _, entry := range cfg.Entries {
				channels = append(channels, entry.Channel)
			}

			err = schedule(cmd.Context(), sched, o, seqs, channels)
			if cfg.AlwaysDeactivate {
				o.deactivate()
			}
			if len(o.traces) != len(o.names) {
				fmt.Fprintln(out)
			}
			o.printTraces(out, sched.Ticks())
			return
		},
	}

	c.Flags().Float64Var(&bps, "bps", 0, "Override the configured tick rate")
	return c
}

func scoreCmd(opts *options) *cobra.Command {
	var bps float64
	var fail bool

	c := &cobra.Command{
		Use:   "score SCRIPT",
		Short: "Run a Starlark score, printing a trace of every channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			sc, err := score.Load(args[0])
			if err != nil {
				return
			}
			if bps != 0 {
				sc.Rate = bps
			}

			seqs, err := sc.Build(policyOf(fail))
			if err != nil {
				return
			}

			sched, err := scheduler.New(sc.Rate)
			if err != nil {
				return
			}
			sched.Verbose = opts.verbose

			// Every entry without a channel gets its own, named after it.
			var channels []string
			for _, entry := range sc.Entries {
				name := entry.Channel
				if name == "" {
					name = entry.Name
				}
				channels = append(channels, name)
			}

			o := newOutputs()
			for _, name := range channels {
				if slices.Contains(o.names, name) {
					continue
				}
				err = o.open(config.Channel{Name: name, Output: config.OUTPUT_TRACE}, nil, sched.Ticks)
				if err != nil {
					return
				}
			}

			err = schedule(cmd.Context(), sched, o, seqs, channels)
			o.printTraces(cmd.OutOrStdout(), sched.Ticks())
			return
		},
	}

	c.Flags().Float64Var(&bps, "bps", 0, "Override the score's tick rate")
	c.Flags().BoolVar(&fail, "fail", false, "Fail on unsupported characters instead of skipping them")
	return c
}
