package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sss/cli"
	"sss/schema"
)

var sizeCmd = &cobra.Command{
	Use:   "size <type> <value>...",
	Short: "Encodes each JSON value literal and tabulates the encoded sizes.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := schema.Parse(args[0])
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Value", "Bytes"})
		var total int
		for _, literal := range args[1:] {
			value, err := cli.ParseValue(typ, []byte(literal))
			if err != nil {
				return err
			}
			data, err := cdc.Encode(typ, value)
			if err != nil {
				return err
			}
			table.Append([]string{literal, strconv.Itoa(len(data))})
			total += len(data)
		}
		table.SetFooter([]string{"total", strconv.Itoa(total)})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
