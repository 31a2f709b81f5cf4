package cmd

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sss/cli"
	"sss/log"
	"sss/schema"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <type> [value]",
	Short: "Encodes a JSON value literal against a type and prints hex.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithModule("encode")
		typ, err := schema.Parse(args[0])
		if err != nil {
			return err
		}

		var literal []byte
		if len(args) == 2 {
			literal = []byte(args[1])
		} else {
			literal, err = ioutil.ReadAll(os.Stdin)
			if err != nil {
				return errors.Wrap(err, "error reading value from stdin")
			}
		}

		value, err := cli.ParseValue(typ, literal)
		if err != nil {
			return err
		}
		data, err := cdc.Encode(typ, value)
		if err != nil {
			return err
		}
		logger.Debug("encoded value", "type", typ.String(), "bytes", len(data))

		format := cfg.Format
		if cmd.Flags().Changed(cli.FlagFormat) {
			format, _ = cmd.Flags().GetString(cli.FlagFormat)
		}
		switch format {
		case "hex":
			fmt.Println(hex.EncodeToString(data))
		case "raw":
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
		default:
			return errors.Errorf("unknown output format %q", format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
