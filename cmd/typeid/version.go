package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			data, _ := json.MarshalIndent(map[string]string{
				"version":   Version,
				"commit":    Commit,
				"buildDate": BuildDate,
			}, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Printf("typeid %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
