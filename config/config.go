package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Format   string      `mapstructure:"format"`
	Limits   LimitConfig `mapstructure:"limits"`
}

// LimitConfig bounds what the decoder will allocate for hostile length
// prefixes. Zero means the codec default.
type LimitConfig struct {
	MaxArrayLen uint64 `mapstructure:"max_array_len"`
	MaxByteLen  uint64 `mapstructure:"max_byte_len"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
