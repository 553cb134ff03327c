package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action is one tool instruction parsed from an assistant reply.
type Action struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

// ParseAction extracts a JSON action from free-form reply text. Models tend
// to wrap the JSON in prose, so the span from the first '{' to the last '}'
// is taken as a single greedy candidate; surrounding prose is discarded.
// Any failure means "no action" — the reply is then a plain final message,
// never an error.
func ParseAction(reply string) (*Action, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return nil, false
	}

	var action Action
	if err := json.Unmarshal([]byte(reply[start:end+1]), &action); err != nil {
		return nil, false
	}
	if action.Args == nil {
		action.Args = map[string]any{}
	}
	return &action, true
}

// StringArg pulls a scalar argument as a string. Non-string scalars are
// formatted with fmt.Sprint; a missing or null value reports ok=false.
func StringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}
