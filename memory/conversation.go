package memory

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/perora/homekeeper/internal/datadir"
)

// Role tags a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// ToolCall records one function invocation requested by the assistant.
// Arguments is the raw JSON argument string as concatenated from the
// stream, valid only once the stream has finished.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is one conversation turn. Key is a creation timestamp used as a
// display identity; rapid consecutive creation can repeat it, so nothing
// may rely on it being unique.
type Message struct {
	Key        int64      `json:"key"`
	Role       Role       `json:"role"`
	Content    string     `json:"content"`
	Name       string     `json:"name,omitempty"`         // tool turns: invoked function
	ToolCallID string     `json:"tool_call_id,omitempty"` // tool turns: id of the answered call
	IsError    bool       `json:"is_error,omitempty"`     // tool turns: result reports a failure
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // assistant turns: requested calls
}

// NewMessage returns a turn stamped with the current time as its key.
func NewMessage(role Role, content string) Message {
	return Message{Key: time.Now().UnixMilli(), Role: role, Content: content}
}

// NewToolResult returns a tool turn answering the call with the given id.
func NewToolResult(callID, name, content string, isError bool) Message {
	m := NewMessage(RoleTool, content)
	m.Name = name
	m.ToolCallID = callID
	m.IsError = isError
	return m
}

// StartsToolExchange implements windowing.Turn.
func (m Message) StartsToolExchange() bool {
	return m.Role == RoleAssistant && len(m.ToolCalls) > 0
}

// AnswersToolExchange implements windowing.Turn.
func (m Message) AnswersToolExchange() bool {
	return m.Role == RoleTool
}

// LoadTranscript reads a persisted transcript. A missing file yields an
// empty transcript and no error.
func LoadTranscript(path string) ([]Message, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var msgs []Message
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SaveTranscript writes the full transcript to path.
func SaveTranscript(path string, msgs []Message) error {
	b, err := json.MarshalIndent(msgs, "", " ")
	if err != nil {
		return err
	}
	return datadir.WriteAtomic(path, b)
}
