package main

import (
	"encoding/json"
	"fmt"

	"github.com/dombox/typeid"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <uuid> [prefix]",
	Short: "Build a TypeID from an existing UUID",
	Long: `Build a TypeID from an existing UUID. The UUID may be given in
canonical hyphenated form or as 32 bare hex characters, in either case.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 2 {
			prefix = args[1]
		}

		tid, err := typeid.FromUUID(prefix, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			data, _ := json.MarshalIndent(map[string]string{
				"typeid": tid.String(),
				"uuid":   tid.UUIDString(),
			}, "", "  ")
			fmt.Println(string(data))
			return nil
		}
		fmt.Println(tid.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
