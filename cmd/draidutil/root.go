package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openzfs/draid/weed/glog"
	"github.com/openzfs/draid/weed/util"
)

var (
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "draidutil",
	Short: "Offline tooling for the dRAID permutation map and stripe layout",
	Long: `draidutil regenerates and verifies the frozen dRAID permutation-map
table, and prints the stripe layout dRAID would use for a given
vdev geometry and I/O request.

It never touches a live pool; every command operates on parameters
passed on the command line.

Commands:
  genmap       Regenerate a permutation map for one child count
  verify-map   Re-check a frozen table entry's checksum
  layout       Print the RowMap for an offset/size
  spare-name   Format or parse a distributed-spare identity`,
	Version: "0.1.0-dev",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			glog.SetVerbosity(1)
		}
		// an optional draidutil.toml may carry flag defaults (e.g. a
		// default --output format); its absence is not an error.
		util.LoadConfiguration("draidutil", false)
		if util.GetViper().GetString("output") != "" && !cmd.Flags().Changed("output") {
			outputFormat = util.GetViper().GetString("output")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format; no subcommand reads it, all print plain text")
}
