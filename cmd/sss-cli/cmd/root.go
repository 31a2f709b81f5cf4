package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sss/cli"
	"sss/codec"
	"sss/config"
	"sss/log"
)

var (
	cfg *config.Config
	cdc *codec.Codec
)

var rootCmd = &cobra.Command{
	Use:   "sss-cli",
	Short: "Encode, decode and inspect SSS values from the command line.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" {
			return nil
		}
		homeDir := cli.GetHomeDir(cmd)
		var err error
		cfg, err = config.ReadConfigFile(homeDir)
		if err != nil {
			return errors.Wrap(err, "error reading config")
		}

		levelStr := cfg.LogLevel
		if cmd.Flags().Changed(cli.FlagLogLevel) {
			levelStr, _ = cmd.Flags().GetString(cli.FlagLogLevel)
		}
		level, err := log.NewLevel(levelStr)
		if err != nil {
			return err
		}
		log.SetLevel(level)

		cdc = &codec.Codec{
			MaxArrayLen: codec.DefaultMaxArrayLen,
			MaxByteLen:  codec.DefaultMaxByteLen,
		}
		if cfg.Limits.MaxArrayLen != 0 {
			cdc.MaxArrayLen = cfg.Limits.MaxArrayLen
		}
		if cfg.Limits.MaxByteLen != 0 {
			cdc.MaxByteLen = cfg.Limits.MaxByteLen
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.sss-cli", "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, "hex", "Encode output format, hex or raw.")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, "", "Overrides the configured log level.")
}
