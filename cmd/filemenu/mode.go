package main

import (
	"os"
	"path/filepath"

	survey "github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/Bibi40k/filemenu/configs"
	"github.com/Bibi40k/filemenu/pkg/filemenu"
)

const (
	modeSave = "Save a file"
	modeLoad = "Load a file"
)

// resolveMode decides between saving and loading. Without a flag it asks on
// a terminal and falls back to saving otherwise.
func resolveMode(save, load, interactive bool, ask func() (string, error)) (bool, error) {
	switch {
	case save && load:
		return false, &userError{msg: "--save and --load are mutually exclusive", hint: "Pass only one of them"}
	case save:
		return true, nil
	case load:
		return false, nil
	case !interactive:
		return true, nil
	}
	choice, err := ask()
	if err != nil {
		return false, err
	}
	return choice != modeLoad, nil
}

func askMode() (string, error) {
	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "What do you want to do?",
		Options: []string{modeSave, modeLoad},
		Default: modeSave,
	}, &choice)
	return choice, err
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// loadMenuConfig builds the menu configuration from the embedded defaults,
// overlaid with path when given.
func loadMenuConfig(path string) (filemenu.Config, error) {
	defaults := configs.Defaults
	if path != "" {
		loaded, err := configs.LoadFile(path)
		if err != nil {
			return filemenu.Config{}, &userError{
				msg:  "cannot load menu config " + filepath.Base(path),
				hint: "Use a .yaml or .toml file with a [menu] section",
				err:  err,
			}
		}
		defaults = loaded
	}
	cfg, err := filemenu.ConfigFrom(defaults.Menu)
	if err != nil {
		return filemenu.Config{}, &userError{
			msg:  err.Error(),
			hint: "padding_width must equal the number of digits in max_counter",
			err:  err,
		}
	}
	return cfg, nil
}
