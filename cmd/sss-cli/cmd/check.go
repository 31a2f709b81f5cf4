package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sss/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check <type>",
	Short: "Parses a type string and prints its canonical form.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := schema.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(typ.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
