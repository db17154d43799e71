package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/keyer/morse"
)

func encodeCmd() *cobra.Command {
	var fail bool
	var table bool

	c := &cobra.Command{
		Use:   "encode [TEXT...]",
		Short: "Print the symbol string for text",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if table {
				for r, code := range morse.Symbols() {
					fmt.Fprintf(out, "%c %v\n", r, code)
				}
				return nil
			}

			symbols, err := morse.Encode(strings.Join(args, " "), policyOf(fail))
			if err != nil {
				return err
			}

			fmt.Fprintln(out, symbols)
			return nil
		},
	}

	c.Flags().BoolVar(&fail, "fail", false, "Fail on unsupported characters instead of skipping them")
	c.Flags().BoolVar(&table, "table", false, "Print the symbol table")
	return c
}

func policyOf(fail bool) morse.Policy {
	if fail {
		return morse.POLICY_FAIL
	}
	return morse.POLICY_SKIP
}
