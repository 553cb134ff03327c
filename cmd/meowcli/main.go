package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qwkiks/meowcli/internal/config"
	"github.com/qwkiks/meowcli/internal/logger"
)

var (
	providerFlag string
	modelFlag    string
	profileFlag  string
	configFlag   string
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "meowcli",
	Short: "meowcli - a tool-calling AI agent for your terminal",
	Long: `meowcli is an interactive chat client that turns a hosted text-generation
model into a local agent: the model answers with JSON tool instructions
(list a directory, read or write a file, run a shell command) and meowcli
executes them and feeds the results back until the task is done.

Run without arguments for the interactive shell, or use the subcommands
directly.`,
	RunE: runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "provider to use (base, openrouter, gemini)")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "model to use (overrides config)")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "agent profile to use (e.g. default, coder)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to the settings file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log agent activity to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the settings path once and loads the file. Load never
// fails; a broken file means defaults.
func loadConfig() (string, *config.Config, error) {
	path := configFlag
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return "", nil, err
		}
		path = p
	}
	return path, config.Load(path), nil
}

func newLogger() logger.Logger {
	if verboseFlag {
		return logger.New(os.Stderr)
	}
	return logger.Nop{}
}
