package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// config mirrors the optional irval.toml next to the working directory.
type config struct {
	Output struct {
		Color     string `toml:"color"`
		ShowTypes bool   `toml:"show_types"`
	} `toml:"output"`
}

// loadConfig reads the config file. A missing file is not an error; the
// zero config applies.
func loadConfig(path string) (config, error) {
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}
