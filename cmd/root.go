// SPDX-License-Identifier: MIT

// Package cmd implements the typereduce command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/katalvlaran/typereduction/internal/config"
	"github.com/katalvlaran/typereduction/internal/logger"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("cmd")

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string

	// cfg is loaded once in PersistentPreRunE.
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:   "typereduce",
		Short: "Interval type-2 fuzzy type reduction",
		Long: `typereduce computes the type-reduced interval [y_l, y_r] of interval
type-2 fuzzy rule sets with the KM, EKM, EIASC, WM or TWEKM algorithm.

Each interval is written "a,b,c,d": consequent centroid range [a,b] and
firing interval [c,d].`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rf.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "log level (debug, info, warning, error); default "+logger.DefaultLevel)

	root.AddCommand(newReduceCmd(rf), newCompareCmd(rf))

	return root
}

// setup installs logging and loads the configuration file. The flag level
// is applied before loading so config diagnostics obey it; a level from the
// file only takes over when --log-level was not given.
func (rf *rootFlags) setup(cmd *cobra.Command) error {
	if err := logger.InitLog(os.Stderr, rf.logLevel); err != nil {
		return err
	}
	cfg, err := config.Load(rf.configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") {
		if err = logger.InitLog(os.Stderr, cfg.LogLevel); err != nil {
			return err
		}
	}
	rf.cfg = cfg
	log.Debugf("running %s", cmd.CommandPath())

	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "typereduce: %v\n", err)

		return 1
	}

	return 0
}
