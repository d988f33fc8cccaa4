// Package configs provides library defaults loaded from the embedded defaults.yaml.
// All hardcoded naming-convention values live in defaults.yaml.
package configs

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults holds all library default values (loaded from defaults.yaml at startup).
var Defaults LibDefaults

func init() {
	if err := yaml.Unmarshal(defaultsYAML, &Defaults); err != nil {
		panic("filemenu: invalid defaults.yaml: " + err.Error())
	}
}

// LibDefaults holds all configurable library defaults.
type LibDefaults struct {
	Menu MenuDefaults `yaml:"menu" toml:"menu"`
}

// MenuDefaults holds the naming convention and layout of the file menu.
type MenuDefaults struct {
	Extension           string `yaml:"extension" toml:"extension"`
	SequentialSeparator string `yaml:"sequential_separator" toml:"sequential_separator"`
	PaddingWidth        int    `yaml:"padding_width" toml:"padding_width"`
	MaxCounter          int    `yaml:"max_counter" toml:"max_counter"`
	MaxNameLength       int    `yaml:"max_name_length" toml:"max_name_length"`
	Columns             int    `yaml:"columns" toml:"columns"`
	DefaultDirectory    string `yaml:"default_directory" toml:"default_directory"`
	HistoryLimit        int    `yaml:"history_limit" toml:"history_limit"`
}

// LoadFile returns Defaults overlaid with the values found in path.
// Keys missing from the file keep their default value.
// The format is chosen by extension: .yaml/.yml or .toml.
func LoadFile(path string) (LibDefaults, error) {
	out := Defaults
	data, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return out, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &out); err != nil {
			return out, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
	default:
		return out, fmt.Errorf("unsupported config format %q (use .yaml or .toml)", filepath.Ext(path))
	}
	return out, nil
}
