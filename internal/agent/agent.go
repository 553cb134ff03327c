// Package agent drives the tool-call loop: send conversation history to the
// model, parse the reply for a JSON action, execute it, feed the result back
// as a TOOL_RESULT user message, and repeat until the model gives a final
// answer, asks a question, or replies in plain text.
package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/qwkiks/meowcli/internal/provider"
	"github.com/qwkiks/meowcli/internal/tools"
)

// TurnKind classifies how one outer turn of the loop ended.
type TurnKind int

const (
	// TurnPlain means the reply contained no parseable action and is shown verbatim.
	TurnPlain TurnKind = iota
	// TurnAnswer means the model called final_answer.
	TurnAnswer
	// TurnQuestion means the model called ask_user.
	TurnQuestion
)

// Turn is the terminal result of one Run call.
type Turn struct {
	Kind TurnKind
	Text string
}

// Agent owns the conversation history for one chat session. History starts
// with exactly one system message and is append-only; entries are never
// removed or reordered.
type Agent struct {
	provider provider.Provider
	model    string
	history  []provider.Message
	maxIter  int

	OnToolCall   func(name string, args map[string]any)
	OnToolResult func(name string, result string)
}

// New creates an Agent for the given provider and model. maxIterations
// bounds the inner tool loop per user turn; zero or negative means no bound.
func New(p provider.Provider, model string, maxIterations int) *Agent {
	return &Agent{
		provider: p,
		model:    model,
		maxIter:  maxIterations,
		history: []provider.Message{
			provider.SystemMessage(defaultSystemPrompt),
		},
	}
}

// SetSystemPrompt overrides the default tool-use instructions.
func (a *Agent) SetSystemPrompt(prompt string) {
	if prompt != "" {
		a.history[0] = provider.SystemMessage(prompt)
	}
}

// Run appends the user message and executes the inner tool loop until the
// model reaches a terminal action. Transport and response-shape errors are
// returned to the caller; tool failures never are — they come back to the
// model as error-marked TOOL_RESULT text.
func (a *Agent) Run(ctx context.Context, userMessage string) (*Turn, error) {
	a.history = append(a.history, provider.UserMessage(userMessage))

	for i := 0; a.maxIter <= 0 || i < a.maxIter; i++ {
		reply, err := a.provider.Chat(ctx, a.model, a.history)
		if err != nil {
			return nil, fmt.Errorf("model call: %w", err)
		}
		a.history = append(a.history, provider.AssistantMessage(reply))

		action, ok := ParseAction(reply)
		if !ok {
			return &Turn{Kind: TurnPlain, Text: reply}, nil
		}

		switch action.Tool {
		case "ask_user":
			question, _ := StringArg(action.Args, "question")
			return &Turn{Kind: TurnQuestion, Text: question}, nil
		case "final_answer":
			text, _ := StringArg(action.Args, "text")
			return &Turn{Kind: TurnAnswer, Text: text}, nil
		}

		if a.OnToolCall != nil {
			a.OnToolCall(action.Tool, action.Args)
		}
		result := a.executeTool(ctx, action)
		if a.OnToolResult != nil {
			a.OnToolResult(action.Tool, result)
		}

		a.history = append(a.history, provider.UserMessage("TOOL_RESULT: "+result))
	}

	return nil, fmt.Errorf("agent reached max iterations (%d) without a final response", a.maxIter)
}

// executeTool dispatches an action to the matching executor. An unknown or
// missing tool name becomes a result the model can react to.
func (a *Agent) executeTool(ctx context.Context, action *Action) string {
	switch action.Tool {
	case "list_directory":
		path, ok := StringArg(action.Args, "path")
		if !ok {
			path = "."
		}
		return tools.ListDirectory(path)
	case "read_file":
		path, ok := StringArg(action.Args, "path")
		if !ok {
			return missingArg("read_file", "path")
		}
		return tools.ReadFile(path)
	case "write_file":
		path, ok := StringArg(action.Args, "path")
		if !ok {
			return missingArg("write_file", "path")
		}
		content, ok := StringArg(action.Args, "content")
		if !ok {
			return missingArg("write_file", "content")
		}
		return tools.WriteFile(path, content)
	case "execute_shell":
		command, ok := StringArg(action.Args, "command")
		if !ok {
			return missingArg("execute_shell", "command")
		}
		return tools.ExecuteShell(ctx, command)
	default:
		return fmt.Sprintf("Unknown tool: %s", action.Tool)
	}
}

func missingArg(tool, key string) string {
	return fmt.Sprintf("Error: missing required argument '%s' for %s", key, tool)
}

// History returns the conversation history (for display/debugging).
func (a *Agent) History() []provider.Message {
	return a.history
}

// Reset clears the conversation, keeping the system prompt.
func (a *Agent) Reset() {
	a.history = a.history[:1]
}

// FormatToolCall renders a tool call for display, arguments in key order.
// Long argument values are truncated to a few lines so file contents don't
// flood the terminal.
func FormatToolCall(name string, args map[string]any) string {
	const maxLines = 5
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		s := fmt.Sprint(args[k])
		if lines := strings.Split(s, "\n"); len(lines) > maxLines {
			s = strings.Join(lines[:maxLines], "\n") + "\n..."
		}
		parts = append(parts, fmt.Sprintf("%s='%s'", k, s))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
