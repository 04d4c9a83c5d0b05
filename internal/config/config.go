package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config controls what the shell prints around each run.
type Config struct {
	Prompt      string `toml:"prompt"`
	Color       bool   `toml:"color"`
	PrintTokens bool   `toml:"print_tokens"`
	PrintAst    bool   `toml:"print_ast"`
	DumpAst     bool   `toml:"dump_ast"`
}

func Default() *Config {
	return &Config{
		Prompt:      "> ",
		Color:       true,
		PrintTokens: true,
		PrintAst:    true,
		DumpAst:     false,
	}
}

// Load reads a TOML config file on top of the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	return cfg, nil
}
