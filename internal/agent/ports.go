// Package agent runs one chat turn at a time: it sends the conversation to the
// dialogue model, executes the tool calls the model asks for and returns the
// model's final text answer.
package agent

import (
	"context"
	"encoding/json"

	"pizzabot/internal/adapters/in/tools"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one entry of a conversation. ToolCalls is set on assistant messages
// that request tools; ToolCallID and Name on the matching tool results.
type Message struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Model is the dialogue model. It returns the next assistant message.
type Model interface {
	Complete(ctx context.Context, messages []Message, declarations []tools.Declaration) (Message, error)
}

// Toolbox executes tools on behalf of the model.
type Toolbox interface {
	Declarations() []tools.Declaration
	Invoke(ctx context.Context, name string, args json.RawMessage) tools.Result
}

// Session is the remembered state of one chat: the order being built and the
// user and assistant messages exchanged so far.
type Session struct {
	ID       string    `json:"id"`
	OrderID  string    `json:"order_id,omitempty"`
	Messages []Message `json:"messages"`
}

// SessionStore loads and saves sessions. Loading an unknown id returns an empty
// session with that id.
type SessionStore interface {
	Load(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, session Session) error
}
