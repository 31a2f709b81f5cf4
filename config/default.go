package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"sss/codec"
	"sss/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Format:   "hex",
	Limits: LimitConfig{
		MaxArrayLen: codec.DefaultMaxArrayLen,
		MaxByteLen:  codec.DefaultMaxByteLen,
	},
}

const defaultConfigTemplateText = `# sss-cli Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Sets the default encode output format. Can be "hex" or "raw".
format = "{{.Format}}"

# Bounds on what the decoder will allocate when a length prefix
# arrives from untrusted input.
[limits]
  # Maximum element count of a dynamic-length sequence.
  max_array_len = {{.Limits.MaxArrayLen}}
  # Maximum length of a dynamic byte string, in bytes.
  max_byte_len = {{.Limits.MaxByteLen}}
`

var defaultConfigTemplate = template.Must(template.New("config").Parse(defaultConfigTemplateText))

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "error opening config file")
	}
	defer f.Close()
	return WriteDefaultConfig(f)
}

func WriteDefaultConfig(w io.Writer) error {
	var buf bytes.Buffer
	if err := defaultConfigTemplate.Execute(&buf, DefaultConfig); err != nil {
		return errors.Wrap(err, "error rendering default config")
	}
	_, err := w.Write(buf.Bytes())
	return err
}
