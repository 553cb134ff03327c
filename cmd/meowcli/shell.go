package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/qwkiks/meowcli/internal/ui"
)

// runShell is the interactive front door: banner, >>> prompt, slash
// commands. Each command is a thin wrapper over the same handlers the cobra
// subcommands use.
func runShell(cmd *cobra.Command, args []string) error {
	path, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Materialize the file on first run so /settings has something to edit.
	if err := saveConfig(path, cfg); err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Could not write settings: %v", err)))
	}

	fmt.Println(ui.Banner())

	if p, ok := cfg.Providers[cfg.DefaultProvider]; ok && p.APIKey == "" {
		fmt.Println(ui.AccentStyle.Render(fmt.Sprintf(
			"No API key set for provider '%s'. Set one with /settings set api_key %s <key>.",
			cfg.DefaultProvider, cfg.DefaultProvider)))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.AccentStyle.Render(">>> "),
		InterruptPrompt: "^C",
		EOFPrompt:       "/exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println(ui.HintStyle.Render("Bye!"))
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		command := strings.ToLower(parts[0])
		rest := parts[1:]

		switch command {
		case "/help":
			printHelp()
		case "/models":
			if err := showModels(cfg); err != nil {
				fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Could not fetch models: %v", err)))
			}
		case "/settings":
			if err := handleSettings(path, cfg, rest); err != nil {
				fmt.Println(ui.ErrorStyle.Render(err.Error()))
			}
		case "/chat":
			model := ""
			if len(rest) > 0 {
				model = rest[0]
			}
			if err := runChatSession(cfg, model); err != nil {
				fmt.Println(ui.ErrorStyle.Render(err.Error()))
			}
		case "/exit":
			fmt.Println(ui.HintStyle.Render("Bye!"))
			return nil
		default:
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Unknown command '%s'. Type /help for the command list.", command)))
		}
	}
}

func printHelp() {
	fmt.Println(ui.TitledPanel("Agent mode",
		"/chat starts an AI agent that can work with files and run commands.\nJust give it a task."))
	fmt.Println(ui.Table("Commands",
		[]string{"Command", "Description"},
		[][]string{
			{"/help", "Show this message"},
			{"/models", "List models available on the current provider"},
			{"/chat [model]", "Chat with the agent; without a model the provider default is used"},
			{"/settings show", "Show current settings"},
			{"/settings set provider <name>", "Set the default provider (base, openrouter, gemini)"},
			{"/settings set api_key <provider> <key>", "Set the API key for a provider"},
			{"/settings set model <provider> <model>", "Set the default model for a provider"},
			{"/exit", "Quit"},
		}))
}
