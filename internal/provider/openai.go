package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIClient serves the two OpenAI-compatible providers (base, openrouter).
// Chat goes through the openai-go SDK pointed at the provider's base URL;
// model listing is raw HTTP because the two listing payloads differ.
type openAIClient struct {
	name   string
	apiKey string
	ep     Endpoints
	client *openai.Client
	http   *http.Client
}

func newOpenAIClient(name, apiKey string, ep Endpoints) *openAIClient {
	client := openai.NewClient(
		option.WithBaseURL(ep.Chat),
		option.WithAPIKey(apiKey),
	)
	return &openAIClient{
		name:   name,
		apiKey: apiKey,
		ep:     ep,
		client: &client,
		http:   http.DefaultClient,
	}
}

func (c *openAIClient) Name() string { return c.name }

func (c *openAIClient) Chat(ctx context.Context, model string, history []Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(history),
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices in response")
	}
	return completion.Choices[0].Message.Content, nil
}

func convertMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleUser:
			out = append(out, openai.UserMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		}
	}
	return out
}

// ListModels fetches the provider's model catalog. The base provider returns
// a bare JSON array with a community flag; openrouter wraps models in a
// data envelope.
func (c *openAIClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	body, err := c.get(ctx, c.ep.Models)
	if err != nil {
		return nil, err
	}

	if c.name == "openrouter" {
		var result struct {
			Data []struct {
				ID          string `json:"id"`
				Name        string `json:"name"`
				Description string `json:"description"`
			} `json:"data"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("decoding models response: %w (body: %s)", err, excerpt(body))
		}
		models := make([]ModelInfo, len(result.Data))
		for i, m := range result.Data {
			models[i] = ModelInfo{Name: m.ID, Description: m.Description}
		}
		return models, nil
	}

	var result []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Community   bool   `json:"community"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding models response: %w (body: %s)", err, excerpt(body))
	}
	models := make([]ModelInfo, len(result))
	for i, m := range result {
		models[i] = ModelInfo{Name: m.Name, Description: m.Description, Community: m.Community}
	}
	return models, nil
}

func (c *openAIClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching models: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading models response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("models API returned %d: %s", resp.StatusCode, excerpt(body))
	}
	return body, nil
}

// excerpt truncates a response body for error messages.
func excerpt(body []byte) string {
	const maxLen = 512
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
