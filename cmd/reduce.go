// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/typereduction/batch"
	"github.com/katalvlaran/typereduction/reduce"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// reduceFlags are the per-run overrides of the configuration file.
type reduceFlags struct {
	algorithm     string
	epsilon       float64
	maxIterations int
	workers       int
	input         string
}

// settings is the effective run configuration after file and flags are merged.
type settings struct {
	algo    reduce.Algorithm
	opts    reduce.Options
	workers int
}

func bindReduceFlags(fs *pflag.FlagSet, f *reduceFlags, withAlgorithm bool) {
	if withAlgorithm {
		fs.StringVarP(&f.algorithm, "algorithm", "a", "", "km, ekm, eiasc, wm or twekm (default from config, else eiasc)")
	}
	fs.Float64VarP(&f.epsilon, "epsilon", "e", 0, "switch point tolerance (default from config, else 1e-7)")
	fs.IntVar(&f.maxIterations, "max-iterations", 0, "KM/EKM iteration cap; 0 sizes it from the rule count")
	fs.StringVarP(&f.input, "input", "i", "", `rule set file; "-" or empty reads stdin`)
}

// resolve applies the explicitly set flags on top of the loaded configuration.
func (f *reduceFlags) resolve(fs *pflag.FlagSet, rf *rootFlags) (settings, error) {
	cfg := *rf.cfg
	if fs.Changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if fs.Changed("epsilon") {
		cfg.Epsilon = f.epsilon
	}
	if fs.Changed("max-iterations") {
		cfg.MaxIterations = f.maxIterations
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}
	algo, err := cfg.ParsedAlgorithm()
	if err != nil {
		return settings{}, err
	}

	return settings{algo: algo, opts: cfg.Options(), workers: cfg.Workers}, nil
}

func newReduceCmd(rf *rootFlags) *cobra.Command {
	f := &reduceFlags{}
	c := &cobra.Command{
		Use:   "reduce [a,b,c,d ...]",
		Short: "Print y_l and y_r for each rule set",
		Long: `reduce prints "y_l y_r" for every rule set, one line per set.

Intervals come from the arguments, from --input, or from stdin. In files
"---" starts a new rule set and "#" starts a comment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.resolve(cmd.Flags(), rf)
			if err != nil {
				return err
			}
			sets, err := readSets(args, f.input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			log.Infof("%d rule sets, algorithm %s", len(sets), s.algo)
			results, err := batch.Reduce(cmd.Context(), sets, s.algo, &s.opts, s.workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%.6f %.6f\n", r.Left, r.Right)
			}

			return nil
		},
	}
	bindReduceFlags(c.Flags(), f, true)
	c.Flags().IntVarP(&f.workers, "workers", "w", 0, "parallel rule sets; 0 uses GOMAXPROCS")

	return c
}
