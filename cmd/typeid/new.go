package main

import (
	"encoding/json"
	"fmt"

	"github.com/dombox/typeid"
	"github.com/spf13/cobra"
)

var newCount int

var newCmd = &cobra.Command{
	Use:   "new [prefix]",
	Short: "Generate one or more fresh TypeIDs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		if newCount < 1 {
			return fmt.Errorf("count must be at least 1, got %d", newCount)
		}

		ids := make([]string, 0, newCount)
		for i := 0; i < newCount; i++ {
			tid, err := typeid.New(prefix)
			if err != nil {
				return err
			}
			ids = append(ids, tid.String())
		}

		if jsonOutput {
			data, _ := json.MarshalIndent(ids, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().IntVarP(&newCount, "count", "n", 1, "Number of TypeIDs to generate")
	rootCmd.AddCommand(newCmd)
}
