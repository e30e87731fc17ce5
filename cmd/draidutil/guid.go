package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var newGUIDCmd = &cobra.Command{
	Use:   "new-guid",
	Short: "Mint a pool-identity GUID for a distributed spare's synthesized config",
	Long: `new-guid prints a fresh random UUID suitable for the pool_guid a
distributed spare's ReadConfig carries in its synthesized, label-
equivalent config descriptor.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(uuid.New().String())
	},
}

func init() {
	rootCmd.AddCommand(newGUIDCmd)
}
