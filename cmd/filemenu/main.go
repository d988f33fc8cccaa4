// filemenu - pick or create a managed file through an interactive terminal menu
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Bibi40k/filemenu/pkg/filemenu"
)

var configFile string
var debugLogs bool
var loadMode bool
var saveMode bool
var menuDirs []string
var writePlaceholder bool

// mainSigCh receives SIGINT outside readline's raw mode (plain stdin, survey).
var mainSigCh = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:           "filemenu",
	Short:         "Select or create a managed file through an interactive menu",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = initDebugLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu()
	},
}

var touchCmd = &cobra.Command{
	Use:           "touch <path>",
	Short:         "Write a placeholder file at path",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return touchPlaceholder(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Menu config file (.yaml or .toml) overriding the built-in defaults")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging to tmp/filemenu-debug.log")
	rootCmd.Flags().BoolVar(&saveMode, "save", false, "Select a file to save (sequential names take the next slot)")
	rootCmd.Flags().BoolVar(&loadMode, "load", false, "Select an existing file to load")
	rootCmd.Flags().StringSliceVar(&menuDirs, "dir", nil, "Default directory (repeatable); the first is the starting directory")
	rootCmd.Flags().BoolVar(&writePlaceholder, "placeholder", true, "Write a placeholder file at the selected path when saving")
	rootCmd.AddCommand(touchCmd)
}

func runMenu() error {
	cfg, err := loadMenuConfig(configFile)
	if err != nil {
		return err
	}
	saving, err := resolveMode(saveMode, loadMode, stdinIsTerminal(), askMode)
	if err != nil {
		return err
	}

	fmt.Println("            --------------------")
	fmt.Println("            --- File Manager ---")
	fmt.Println("            --------------------")
	fmt.Println()

	path, ok := filemenu.Run(saving, menuDirs,
		filemenu.WithConfig(cfg),
		filemenu.WithLogger(getLogger()),
	)
	if !ok {
		return nil
	}
	fmt.Printf("Selected file name: %s\n", path)

	if saving && writePlaceholder {
		return touchPlaceholder(path)
	}
	return nil
}

func touchPlaceholder(path string) error {
	if err := filemenu.CreatePlaceholderFile(path); err != nil {
		return &userError{
			msg:  fmt.Sprintf("failed to create %s", path),
			hint: "Check that the directory is writable",
			err:  err,
		}
	}
	getLogger().Info("File created", "path", path)
	return nil
}

func main() {
	signal.Notify(mainSigCh, os.Interrupt)
	go func() {
		<-mainSigCh
		fmt.Println("\nCancelled.")
		if debugCleanup != nil {
			debugCleanup()
		}
		os.Exit(0)
	}()

	if err := rootCmd.Execute(); err != nil {
		const (
			red    = "\033[31m"
			yellow = "\033[33m"
			cyan   = "\033[36m"
			reset  = "\033[0m"
		)
		if ue, ok := err.(*userError); ok {
			fmt.Fprintf(os.Stderr, "%sError:%s %s\n", red, reset, ue.Error())
			if hint := ue.Hint(); hint != "" {
				fmt.Fprintf(os.Stderr, "%sHint:%s %s%s%s\n", yellow, reset, cyan, hint, reset)
			}
		} else {
			fmt.Fprintf(os.Stderr, "%sError:%s %v\n", red, reset, err)
		}
		if debugCleanup != nil {
			debugCleanup()
		}
		os.Exit(1)
	}
	if debugCleanup != nil {
		debugCleanup()
	}
}
