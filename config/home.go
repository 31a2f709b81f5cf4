package config

import (
	"os"
	"path"

	"github.com/pkg/errors"
)

func HomeDirExists(path string) (bool, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if !stat.IsDir() {
		return false, errors.New("home dir path exists, but is a file")
	}

	return true, nil
}

func EnsureHomeDir(path string) error {
	exists, err := HomeDirExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("home directory does not exist - try running sss-cli init")
	}
	return nil
}

func InitHomeDir(homePath string) error {
	if err := os.MkdirAll(homePath, 0700); err != nil {
		return err
	}
	return WriteDefaultConfigFile(homePath)
}

// ReadConfigFile loads config.toml from the home directory, falling
// back to the defaults if none exists yet.
func ReadConfigFile(homePath string) (*Config, error) {
	f, err := os.Open(path.Join(homePath, "config.toml"))
	if os.IsNotExist(err) {
		cfg := DefaultConfig
		return &cfg, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "error opening config file")
	}
	defer f.Close()
	return ReadConfig(f)
}
