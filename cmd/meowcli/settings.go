package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qwkiks/meowcli/internal/config"
	"github.com/qwkiks/meowcli/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		showSettings(cfg)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <provider|api_key|model> <args...>",
	Short: "Change a setting",
	Long: `Change a setting and save it:

  meowcli settings set provider openrouter
  meowcli settings set api_key openrouter sk-or-...
  meowcli settings set model openrouter mistralai/mistral-7b-instruct`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return setSetting(path, cfg, args)
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// handleSettings serves the shell's /settings command with the original
// argument grammar: no args or "show" displays, "set key ..." mutates.
func handleSettings(path string, cfg *config.Config, args []string) error {
	if len(args) == 0 || args[0] == "show" {
		showSettings(cfg)
		return nil
	}
	if args[0] == "set" && len(args) >= 3 {
		return setSetting(path, cfg, args[1:])
	}
	printHelp()
	return nil
}

func showSettings(cfg *config.Config) {
	rows := [][]string{
		{"Default provider", cfg.DefaultProvider, ""},
	}

	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := cfg.Providers[name]
		model := p.Model
		if model == "" {
			model = "Not set"
		}
		rows = append(rows, []string{name, maskKey(p.APIKey), model})
	}

	fmt.Println(ui.Table("Current settings", []string{"Provider", "API key", "Model"}, rows))
}

func setSetting(path string, cfg *config.Config, args []string) error {
	key := strings.ToLower(args[0])

	switch key {
	case "provider":
		name := strings.ToLower(args[1])
		if _, ok := cfg.Providers[name]; !ok {
			return fmt.Errorf("unknown provider '%s' (available: %s)", name, providerNames(cfg))
		}
		cfg.DefaultProvider = name
		if err := saveConfig(path, cfg); err != nil {
			return err
		}
		fmt.Println(ui.AccentStyle.Render(fmt.Sprintf("✓ Default provider set to '%s'.", name)))

	case "api_key":
		if len(args) < 3 {
			return fmt.Errorf("usage: settings set api_key <provider> <key>")
		}
		name := strings.ToLower(args[1])
		p, ok := cfg.Providers[name]
		if !ok {
			return fmt.Errorf("unknown provider '%s' (available: %s)", name, providerNames(cfg))
		}
		p.APIKey = args[2]
		cfg.Providers[name] = p
		if err := saveConfig(path, cfg); err != nil {
			return err
		}
		fmt.Println(ui.AccentStyle.Render(fmt.Sprintf("✓ API key for '%s' saved.", name)))

	case "model":
		if len(args) < 3 {
			return fmt.Errorf("usage: settings set model <provider> <model>")
		}
		name := strings.ToLower(args[1])
		p, ok := cfg.Providers[name]
		if !ok {
			return fmt.Errorf("unknown provider '%s' (available: %s)", name, providerNames(cfg))
		}
		p.Model = strings.Join(args[2:], " ")
		cfg.Providers[name] = p
		if err := saveConfig(path, cfg); err != nil {
			return err
		}
		fmt.Println(ui.AccentStyle.Render(fmt.Sprintf("✓ Default model for '%s' set to '%s'.", name, p.Model)))

	default:
		return fmt.Errorf("unknown setting '%s'", key)
	}

	return nil
}

func saveConfig(path string, cfg *config.Config) error {
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// maskKey hides the middle of an API key for display.
func maskKey(key string) string {
	if key == "" {
		return "Not set"
	}
	if len(key) > 7 {
		return key[:4] + "..." + key[len(key)-3:]
	}
	return key
}

func providerNames(cfg *config.Config) string {
	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
