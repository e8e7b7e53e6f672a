package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dombox/typeid"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <candidate>",
	Short: "Check whether a string is a valid TypeID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		type validateResult struct {
			Valid    bool   `json:"valid"`
			Input    string `json:"input"`
			Kind     string `json:"kind,omitempty"`
			Message  string `json:"message,omitempty"`
			Position *int   `json:"position,omitempty"`
		}

		diag := typeid.Explain(args[0])
		if diag == nil {
			if jsonOutput {
				data, _ := json.MarshalIndent(validateResult{Valid: true, Input: args[0]}, "", "  ")
				fmt.Println(string(data))
			} else {
				fmt.Println("valid")
			}
			return nil
		}

		result := validateResult{
			Valid:   false,
			Input:   args[0],
			Kind:    diag.Kind(),
			Message: diag.Error(),
		}
		if diag.Position >= 0 {
			pos := diag.Position
			result.Position = &pos
		}

		if jsonOutput {
			data, _ := json.MarshalIndent(result, "", "  ")
			fmt.Println(string(data))
		} else {
			fmt.Fprintf(os.Stderr, "invalid: %s\n", diag.Error())
		}
		return errors.New("not a valid typeid")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
