package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dombox/typeid"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <typeid>",
	Short: "Decode a TypeID into its prefix, suffix and UUID value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tid, err := typeid.Parse(args[0])
		if err != nil {
			return err
		}

		type decodeResult struct {
			TypeID    string `json:"typeid"`
			Prefix    string `json:"prefix"`
			Suffix    string `json:"suffix"`
			UUID      string `json:"uuid"`
			Hex       string `json:"hex"`
			Timestamp string `json:"timestamp,omitempty"`
		}

		result := decodeResult{
			TypeID: tid.String(),
			Prefix: tid.Prefix(),
			Suffix: tid.Suffix(),
			UUID:   tid.UUIDString(),
			Hex:    tid.Hex(),
		}
		// The embedded timestamp is only meaningful for v7-shaped values.
		if tid.IsValidV7() {
			result.Timestamp = tid.Timestamp().UTC().Format(time.RFC3339Nano)
		}

		if jsonOutput {
			data, _ := json.MarshalIndent(result, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("typeid:    %s\n", result.TypeID)
		fmt.Printf("prefix:    %s\n", result.Prefix)
		fmt.Printf("suffix:    %s\n", result.Suffix)
		fmt.Printf("uuid:      %s\n", result.UUID)
		fmt.Printf("hex:       %s\n", result.Hex)
		if result.Timestamp != "" {
			fmt.Printf("timestamp: %s\n", result.Timestamp)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
