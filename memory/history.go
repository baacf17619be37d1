package memory

import (
	"encoding/json"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/perora/homekeeper/internal/windowing"
)

// MaxHistoryTurns bounds how many turns are replayed to the model per
// request. The cap limits payload size and cost; the display transcript
// itself is never truncated.
const MaxHistoryTurns = 30

// History is the ordered conversation record.
type History struct {
	msgs []Message
}

// NewHistory returns a history seeded with prior turns, usually a loaded
// transcript.
func NewHistory(msgs []Message) *History {
	return &History{msgs: msgs}
}

// Append adds a turn to the end of the record.
func (h *History) Append(m Message) {
	h.msgs = append(h.msgs, m)
}

// Len reports the full transcript length.
func (h *History) Len() int { return len(h.msgs) }

// Messages returns a copy of the full transcript.
func (h *History) Messages() []Message {
	out := make([]Message, len(h.msgs))
	copy(out, h.msgs)
	return out
}

// Recent returns the newest turns for the wire request, at most
// MaxHistoryTurns, clamped without splitting a tool exchange.
func (h *History) Recent() []Message {
	window, stats := windowing.Clamp(h.msgs, MaxHistoryTurns)
	if stats.OverLimitNewest {
		// A single exchange larger than the cap cannot happen while one
		// tool call is tracked per assistant turn; fall back to the raw
		// tail rather than sending nothing.
		if len(h.msgs) > MaxHistoryTurns {
			return h.msgs[len(h.msgs)-MaxHistoryTurns:]
		}
		return h.msgs
	}
	return window
}

// WireParams converts turns to the Messages API shape: user turns become
// user text messages; assistant turns carry a text block plus one
// tool_use block per recorded call; tool turns become user messages
// holding a tool_result block tagged with the answered call id. System
// turns are skipped — the preamble travels in the request's System field.
func WireParams(msgs []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case RoleAssistant:
			blocks := make([]anthropic.ContentBlockParamUnion, 0, 1+len(m.ToolCalls))
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, tc := range m.ToolCalls {
				args := tc.Arguments
				if strings.TrimSpace(args) == "" {
					args = "{}"
				}
				blocks = append(blocks, anthropic.ContentBlockParamUnion{OfToolUse: &anthropic.ToolUseBlockParam{
					Type:  "tool_use",
					ID:    tc.ID,
					Name:  tc.Name,
					Input: json.RawMessage(args),
				}})
			}
			if len(blocks) == 0 {
				continue // an empty assistant turn is not sendable
			}
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		case RoleTool:
			out = append(out, anthropic.NewUserMessage(anthropic.NewToolResultBlock(m.ToolCallID, m.Content, m.IsError)))
		case RoleSystem:
			// handled by the request builder
		}
	}
	return out
}
