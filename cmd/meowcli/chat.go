package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/qwkiks/meowcli/internal/agent"
	"github.com/qwkiks/meowcli/internal/config"
	"github.com/qwkiks/meowcli/internal/provider"
	"github.com/qwkiks/meowcli/internal/ui"
)

var chatCmd = &cobra.Command{
	Use:   "chat [model]",
	Short: "Start an interactive chat with the agent",
	Long: `Start an interactive conversation with the agent. The model can call
tools (list_directory, read_file, write_file, execute_shell) and sees each
result before its next step.

Examples:
  meowcli chat
  meowcli chat mistralai/mistral-7b-instruct --provider openrouter
  meowcli chat --profile coder`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	model := ""
	if len(args) > 0 {
		model = args[0]
	}
	return runChatSession(cfg, model)
}

// runChatSession owns one chat session: provider resolution, the readline
// loop, and rendering of agent turns. Session state dies with it.
func runChatSession(cfg *config.Config, modelArg string) error {
	log := newLogger()

	var profile *agent.Profile
	if profileFlag != "" {
		p, err := agent.LoadProfile(filepath.Join(cfg.Agent.ProfilesDir, profileFlag+".yaml"))
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		profile = p
	}

	providerName := providerFlag
	if providerName == "" && profile != nil {
		providerName = profile.Provider
	}
	name, pc, err := cfg.Provider(providerName)
	if err != nil {
		return err
	}

	model := modelArg
	if model == "" {
		model = modelFlag
	}
	if model == "" && profile != nil {
		model = profile.Model
	}
	if model == "" {
		model = pc.Model
	}
	if model == "" || model == config.DefaultModel {
		return fmt.Errorf("no model selected for provider '%s': pass one (/chat <model>) or set it with /settings set model %s <model>", name, name)
	}
	if pc.APIKey == "" {
		return fmt.Errorf("no API key for provider '%s': set it with /settings set api_key %s <key>", name, name)
	}

	client, err := provider.New(name, pc.APIKey)
	if err != nil {
		return err
	}

	maxIter := cfg.Agent.MaxIterations
	if profile != nil && profile.MaxIter > 0 {
		maxIter = profile.MaxIter
	}

	a := agent.New(client, model, maxIter)
	if profile != nil {
		a.SetSystemPrompt(profile.SystemPrompt)
	}

	sessionID := uuid.NewString()
	log.Infof("session %s: provider=%s model=%s max_iterations=%d", sessionID, name, model, maxIter)

	banner := fmt.Sprintf("Chatting with agent %s (provider: %s).\nType %s or %s to leave.",
		ui.AccentStyle.Render(model), name,
		ui.AccentStyle.Render("/back"), ui.AccentStyle.Render("/exit"))
	if profile != nil {
		banner += "\nProfile: " + profile.Name
	}
	fmt.Println(ui.Panel(banner))

	a.OnToolCall = func(tool string, args map[string]any) {
		fmt.Println(ui.Panel("→ Calling tool: " + ui.AccentStyle.Render(agent.FormatToolCall(tool, args))))
		log.Debugf("session %s: tool call %s", sessionID, tool)
	}
	a.OnToolResult = func(tool, result string) {
		if strings.Contains(result, "written successfully") {
			fmt.Println(ui.SuccessPanel(result))
		} else {
			fmt.Println(result)
		}
		log.Debugf("session %s: tool %s returned %d bytes", sessionID, tool, len(result))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.PromptStyle.Render("you> "),
		HistoryFile:     filepath.Join(os.TempDir(), "meowcli_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "/back",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "/exit", "/back":
			log.Infof("session %s: closed", sessionID)
			return nil
		}

		turn, err := a.Run(context.Background(), input)
		if err != nil {
			// Transport and response-shape errors end the inner loop; the
			// session itself continues.
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("Request failed: %v", err)))
			continue
		}

		switch turn.Kind {
		case agent.TurnQuestion:
			fmt.Println(ui.TitledPanel("Question from the agent", turn.Text))
		case agent.TurnAnswer:
			fmt.Println(ui.Panel(ui.Markdown(turn.Text)))
		default:
			fmt.Println(ui.Markdown(turn.Text))
		}
	}
}
