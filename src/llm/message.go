package llm

// Message roles as used by the chat-completion API
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry of the conversation history
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
