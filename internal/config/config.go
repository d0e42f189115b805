package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Console  Console `yaml:"console"`
}

type Console struct {
	// Rounds limits how many games a session plays; 0 plays until the input ends.
	Rounds        int    `yaml:"rounds" env:"ROUNDS" env-default:"0"`
	CellSeparator string `yaml:"cell-separator" env-default:" "`
	RowSeparator  string `yaml:"row-separator" env-default:"\n"`
	EmptyMarker   string `yaml:"empty-marker" env-default:"-"`
}

// Load reads the yml file at path. A missing file is not an error:
// defaults and environment variables are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
