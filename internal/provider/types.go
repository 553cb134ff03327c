package provider

// Role represents a chat message role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation. History is replayed verbatim
// to the remote model on every request, so order matters.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ModelInfo describes a model available on a provider.
type ModelInfo struct {
	Name        string
	Description string
	Community   bool
}

// Helper constructors

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
