package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openzfs/draid/internal/draid/spare"
)

var (
	spareNameParse  string
	spareNameParity uint64
	spareNameVdev   uint64
	spareNameSpare  uint64
	spareNameFormat bool
)

var spareNameCmd = &cobra.Command{
	Use:   "spare-name",
	Short: "Format or parse a distributed-spare identity",
	Long: `spare-name either formats a (parity, vdev, spare) triple into its
canonical "draid<P>-<V>-<S>" identity string, or parses one back.

Examples:
  draidutil spare-name --format --parity 1 --vdev 0 --spare 0
  draidutil spare-name --parse draid1-0-0`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSpareName(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(spareNameCmd)
	f := spareNameCmd.Flags()
	f.StringVar(&spareNameParse, "parse", "", "identity string to parse")
	f.BoolVar(&spareNameFormat, "format", false, "format a triple into an identity string")
	f.Uint64Var(&spareNameParity, "parity", 0, "parity count")
	f.Uint64Var(&spareNameVdev, "vdev", 0, "top-level vdev index")
	f.Uint64Var(&spareNameSpare, "spare", 0, "spare id")
}

func runSpareName() error {
	if spareNameParse != "" {
		id, err := spare.ParseName(spareNameParse)
		if err != nil {
			return err
		}
		fmt.Printf("parity=%d vdev=%d spare=%d\n", id.Parity, id.VdevID, id.SpareID)
		return nil
	}
	fmt.Println(spare.FormatName(spare.Identity{Parity: spareNameParity, VdevID: spareNameVdev, SpareID: spareNameSpare}))
	return nil
}
