package main

import (
	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "typeid",
	Short: "Generate, inspect and validate TypeID identifiers",
	Long: `typeid works with TypeIDs: type-prefixed, lexicographically sortable,
globally unique identifiers built on UUIDv7.

  user_01h5fskfsk4fpeqwnsyz5hj55t
  └──┘ └────────────────────────┘
  prefix        suffix`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}
