package oracle

import (
	"context"
	"encoding/json"
)

// Provider is the generation oracle abstraction. Every persona turn,
// student turn, and rubric evaluation goes through this interface.
// Responses to identical requests may differ between calls; consumers
// must never assume exact-text reproducibility.
type Provider interface {
	// Generate sends a prompt to the oracle and returns its output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON. When Schema is nil, Content is raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single oracle call.
type Request struct {
	// System is the system prompt: the role and constraints the oracle
	// speaks under (a persona sheet, the student model, a rubric).
	System string

	// Messages is the context window for this call, oldest first.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When nil the response is free text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single entry in the context window.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the oracle.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "student-turn".
	Name string

	// Description tells the oracle what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the oracle's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// had a Schema, otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as plain text. Structured responses
// come back unchanged; free-text responses are unquoted when possible.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
