package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/keyer/channel"
	"github.com/ezrec/keyer/morse"
	"github.com/ezrec/keyer/player"
	"github.com/ezrec/keyer/sequence"
	"github.com/ezrec/keyer/sidetone"
)

func playCmd(opts *options) *cobra.Command {
	var bps float64
	var fail bool
	var raw bool
	var always bool
	var tone float64
	var mark string
	var space string

	c := &cobra.Command{
		Use:   "play TEXT...",
		Short: "Play text in real time on a single channel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()

			unit, err := sequence.UnitFromRate(bps)
			if err != nil {
				return
			}

			symbols := strings.Join(args, string(sequence.SYMBOL_WORD_GAP))
			if !raw {
				symbols, err = morse.Encode(strings.Join(args, " "), policyOf(fail))
				if err != nil {
					return
				}
			}

			var ch channel.Channel
			if tone > 0 {
				var t *sidetone.Tone
				t, err = sidetone.Open(tone)
				if err != nil {
					return
				}
				defer func() {
					t.Deactivate()
					if cerr := t.Close(); err == nil {
						err = cerr
					}
				}()
				ch = t
			} else {
				tape := &channel.Tape{Output: out, Mark: firstByte(mark), Space: firstByte(space)}
				defer fmt.Fprintln(out)
				ch = tape
			}

			pl := &player.Player{
				Verbose:          opts.verbose,
				AlwaysDeactivate: always,
			}
			return pl.PlaySymbols(cmd.Context(), symbols, unit, ch)
		},
	}

	c.Flags().Float64Var(&bps, "bps", morse.DEFAULT_RATE, "Units per second")
	c.Flags().BoolVar(&fail, "fail", false, "Fail on unsupported characters instead of skipping them")
	c.Flags().BoolVar(&raw, "symbols", false, "Arguments are symbol strings, not text")
	c.Flags().BoolVar(&always, "always-deactivate", false, "Deactivate after every gap")
	c.Flags().Float64Var(&tone, "sidetone", 0, "Play an audio tone at this frequency instead of printing")
	c.Flags().StringVar(&mark, "mark", "#", "Byte printed on activate")
	c.Flags().StringVar(&space, "space", ".", "Byte printed on deactivate")
	return c
}

func firstByte(s string) (b byte) {
	if len(s) > 0 {
		b = s[0]
	}
	return
}
