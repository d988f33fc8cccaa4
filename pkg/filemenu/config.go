package filemenu

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Bibi40k/filemenu/configs"
)

// Config is the naming convention and layout shared by every menu component.
// It is a plain value: copy it, never mutate a shared one.
type Config struct {
	Extension        string // without the leading dot, e.g. "map"
	Separator        rune   // trailing character that requests a sequential name
	PaddingWidth     int    // zero-padded digits of the sequential counter
	MaxCounter       int
	MaxNameLength    int
	Columns          int
	DefaultDirectory string // used when the caller supplies no directories
	HistoryLimit     int
}

// DefaultConfig returns the configuration described by configs.Defaults.
// It panics if the embedded defaults are inconsistent.
func DefaultConfig() Config {
	cfg, err := ConfigFrom(configs.Defaults.Menu)
	if err != nil {
		panic("filemenu: " + err.Error())
	}
	return cfg
}

// ConfigFrom converts loaded defaults into a validated Config.
func ConfigFrom(d configs.MenuDefaults) (Config, error) {
	if utf8.RuneCountInString(d.SequentialSeparator) != 1 {
		return Config{}, fmt.Errorf("%w: sequential separator %q must be a single character",
			ErrInvalidConfig, d.SequentialSeparator)
	}
	sep, _ := utf8.DecodeRuneInString(d.SequentialSeparator)
	cfg := Config{
		Extension:        d.Extension,
		Separator:        sep,
		PaddingWidth:     d.PaddingWidth,
		MaxCounter:       d.MaxCounter,
		MaxNameLength:    d.MaxNameLength,
		Columns:          d.Columns,
		DefaultDirectory: d.DefaultDirectory,
		HistoryLimit:     d.HistoryLimit,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the naming rules depend on.
func (c Config) Validate() error {
	switch {
	case c.Extension == "" || strings.ContainsAny(c.Extension, "./"):
		return fmt.Errorf("%w: extension %q must be non-empty and contain no '.' or '/'", ErrInvalidConfig, c.Extension)
	case c.Separator == 0 || c.Separator == '/' || c.Separator == '.' || c.Separator == ' ':
		return fmt.Errorf("%w: invalid sequential separator %q", ErrInvalidConfig, c.Separator)
	case c.MaxCounter <= 0:
		return fmt.Errorf("%w: max counter must be positive", ErrInvalidConfig)
	case c.PaddingWidth != len(strconv.Itoa(c.MaxCounter)):
		return fmt.Errorf("%w: padding width %d does not match max counter %d",
			ErrInvalidConfig, c.PaddingWidth, c.MaxCounter)
	case c.MaxNameLength <= 0:
		return fmt.Errorf("%w: max name length must be positive", ErrInvalidConfig)
	case c.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive", ErrInvalidConfig)
	case strings.TrimSpace(c.DefaultDirectory) == "":
		return fmt.Errorf("%w: default directory is empty", ErrInvalidConfig)
	}
	return nil
}

func (c Config) sep() string {
	return string(c.Separator)
}
