package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openzfs/draid/internal/draid/permutation"
)

var genmapChildren uint64

var genmapCmd = &cobra.Command{
	Use:   "genmap",
	Short: "Regenerate a permutation map for one child count",
	Long: `genmap looks up the frozen seed/checksum/nperms for a child count and
regenerates the map from scratch, reporting whether the regenerated
checksum matches the frozen one.

Examples:
  draidutil genmap --children 14`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenmap(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(genmapCmd)
	genmapCmd.Flags().Uint64Var(&genmapChildren, "children", 0, "child count to generate a map for (2-255)")
	genmapCmd.MarkFlagRequired("children")
}

func runGenmap() error {
	m, err := permutation.GenerateFromTable(genmapChildren)
	if err != nil {
		return err
	}
	fmt.Printf("children=%d nperms=%d seed=0x%x checksum=0x%x\n", m.Children(), m.Nperms(), m.Seed(), m.Checksum())
	return nil
}
