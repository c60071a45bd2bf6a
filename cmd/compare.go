// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/typereduction/batch"
	"github.com/katalvlaran/typereduction/reduce"
	"github.com/spf13/cobra"
)

var errOneSet = errors.New("compare takes exactly one rule set")

func newCompareCmd(rf *rootFlags) *cobra.Command {
	f := &reduceFlags{}
	c := &cobra.Command{
		Use:   "compare [a,b,c,d ...]",
		Short: "Print every algorithm's result for one rule set",
		Long: `compare runs every algorithm on the same rule set and prints
"<algorithm> y_l y_r" per line. Algorithms that do not return the
Karnik–Mendel end points (WM, TWEKM) are marked with "~".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.resolve(cmd.Flags(), rf)
			if err != nil {
				return err
			}
			sets, err := readSets(args, f.input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(sets) != 1 {
				return fmt.Errorf("%w, got %d", errOneSet, len(sets))
			}
			results, err := batch.Compare(cmd.Context(), sets[0], &s.opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, algo := range reduce.Algorithms() {
				mark := ""
				if !algo.Exact() {
					mark = "~"
				}
				fmt.Fprintf(out, "%s%s %.6f %.6f\n", algo, mark, results[i].Left, results[i].Right)
			}

			return nil
		},
	}
	bindReduceFlags(c.Flags(), f, false)

	return c
}
