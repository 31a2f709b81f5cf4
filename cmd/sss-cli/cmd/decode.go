package cmd

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sss/cli"
	"sss/log"
	"sss/schema"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <type> [hex]",
	Short: "Decodes SSS bytes against a type and prints the value as JSON.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithModule("decode")
		typ, err := schema.Parse(args[0])
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 2 {
			data, err = parseHexArg(args[1])
			if err != nil {
				return err
			}
		} else if isatty.IsTerminal(os.Stdin.Fd()) {
			return errors.New("pass a hex argument or pipe bytes on stdin")
		} else {
			// piped input is raw bytes, not hex
			data, err = ioutil.ReadAll(os.Stdin)
			if err != nil {
				return errors.Wrap(err, "error reading stdin")
			}
		}

		value, err := cdc.Decode(typ, data)
		if err != nil {
			return err
		}
		logger.Debug("decoded value", "type", typ.String(), "bytes", len(data))
		rendered, err := cli.RenderValue(typ, value)
		if err != nil {
			return err
		}
		fmt.Println(string(rendered))
		return nil
	},
}

func parseHexArg(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing hex input")
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
