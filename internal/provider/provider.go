package provider

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Provider abstracts one of the three remote text-generation backends.
// The request/response envelopes differ per backend, so each implementation
// owns its own wire format and exposes plain reply text to the agent.
type Provider interface {
	Name() string
	Chat(ctx context.Context, model string, history []Message) (string, error)
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// Endpoints holds the two URLs a provider needs. Chat is the base URL of an
// OpenAI-compatible API for base/openrouter, and a generateContent template
// (model name spliced in) for gemini.
type Endpoints struct {
	Models string
	Chat   string
}

var endpoints = map[string]Endpoints{
	"base": {
		Models: "https://text.pollinations.ai/models",
		Chat:   "https://text.pollinations.ai/openai",
	},
	"openrouter": {
		Models: "https://openrouter.ai/api/v1/models",
		Chat:   "https://openrouter.ai/api/v1",
	},
	"gemini": {
		Models: "https://generativelanguage.googleapis.com/v1beta/models",
		Chat:   "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent",
	},
}

// Names returns the supported provider names, sorted.
func Names() []string {
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a client for the named provider. The provider set is closed:
// base and openrouter speak the OpenAI chat envelope, gemini speaks its own.
func New(name, apiKey string) (Provider, error) {
	ep, ok := endpoints[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	switch name {
	case "gemini":
		return newGeminiClient(apiKey, ep), nil
	default:
		return newOpenAIClient(name, apiKey, ep), nil
	}
}
