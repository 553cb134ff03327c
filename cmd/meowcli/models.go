package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qwkiks/meowcli/internal/config"
	"github.com/qwkiks/meowcli/internal/provider"
	"github.com/qwkiks/meowcli/internal/ui"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the current provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return showModels(cfg)
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func showModels(cfg *config.Config) error {
	name, pc, err := cfg.Provider(providerFlag)
	if err != nil {
		return err
	}
	client, err := provider.New(name, pc.APIKey)
	if err != nil {
		return err
	}

	fmt.Println(ui.HintStyle.Render("Fetching models..."))
	models, err := client.ListModels(context.Background())
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Available models (%s)", name)

	// Gemini's catalog has no community split and little metadata.
	if name == "gemini" {
		rows := make([][]string, len(models))
		for i, m := range models {
			rows[i] = []string{m.Name}
		}
		fmt.Println(ui.Table(title, []string{"Name"}, rows))
		return nil
	}

	var rows [][]string
	for _, m := range models {
		if !m.Community {
			rows = append(rows, []string{m.Name, m.Description, "Official"})
		}
	}
	for _, m := range models {
		if m.Community {
			rows = append(rows, []string{m.Name, m.Description, "Community"})
		}
	}
	fmt.Println(ui.Table(title, []string{"Name", "Description", "Type"}, rows))
	return nil
}
