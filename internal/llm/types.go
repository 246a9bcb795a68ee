package llm

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role
	Content string
}

// Schema is a JSON schema object describing a structured response. Only
// providers with native structured output use it; the others fall back to
// plain JSON mode.
type Schema map[string]any

// CompletionRequest contains the parameters for an LLM completion request.
type CompletionRequest struct {
	Model          string
	Messages       []Message
	MaxTokens      int
	Temperature    float64
	JSONMode       bool
	ResponseSchema Schema
}

// CompletionResponse contains the result of an LLM completion request.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}

// UserPrompt builds a request holding a single user message.
func UserPrompt(content string) CompletionRequest {
	return CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: content}},
	}
}
