package types

// Message represents a single message sent to a model
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// MessageRole defines the role of a message sender
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// NewUserMessage builds a single-turn user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
