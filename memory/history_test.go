package memory_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/perora/homekeeper/memory"
)

func TestHistory_RecentCapsAtThirtyTurns(t *testing.T) {
	h := memory.NewHistory(nil)
	for i := 0; i < 40; i++ {
		h.Append(memory.NewMessage(memory.RoleUser, fmt.Sprintf("turn %d", i)))
		h.Append(memory.NewMessage(memory.RoleAssistant, "ok"))
	}

	recent := h.Recent()
	if len(recent) > memory.MaxHistoryTurns {
		t.Fatalf("recent exceeds cap: %d", len(recent))
	}
	if got := recent[len(recent)-1].Content; got != "ok" {
		t.Fatalf("newest turn missing: %q", got)
	}
	if h.Len() != 80 {
		t.Fatalf("display transcript must keep everything, got %d", h.Len())
	}
}

func TestHistory_RecentKeepsToolExchangeWhole(t *testing.T) {
	h := memory.NewHistory(nil)
	for i := 0; i < 29; i++ {
		h.Append(memory.NewMessage(memory.RoleUser, "filler"))
	}
	asst := memory.NewMessage(memory.RoleAssistant, "")
	asst.ToolCalls = []memory.ToolCall{{ID: "c1", Name: "queryItems", Arguments: "{}"}}
	h.Append(asst)
	h.Append(memory.NewToolResult("c1", "queryItems", "[]", false))

	recent := h.Recent()
	if len(recent) > memory.MaxHistoryTurns {
		t.Fatalf("recent exceeds cap: %d", len(recent))
	}
	for i, m := range recent {
		if m.StartsToolExchange() {
			if i+1 >= len(recent) || recent[i+1].Role != memory.RoleTool {
				t.Fatal("tool exchange split by the cap")
			}
		}
	}
}

func TestWireParams_Shapes(t *testing.T) {
	asst := memory.NewMessage(memory.RoleAssistant, "let me check")
	asst.ToolCalls = []memory.ToolCall{{ID: "c1", Name: "queryItems", Arguments: `{"name":"milk"}`}}

	msgs := []memory.Message{
		memory.NewMessage(memory.RoleSystem, "ignored"),
		memory.NewMessage(memory.RoleUser, "got milk?"),
		asst,
		memory.NewToolResult("c1", "queryItems", "[]", false),
	}

	params := memory.WireParams(msgs)
	if len(params) != 3 {
		t.Fatalf("system turns must be skipped; got %d params", len(params))
	}

	b, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"tool_use"`, `"tool_result"`, `"c1"`, `"queryItems"`, "got milk?"} {
		if !strings.Contains(s, want) {
			t.Errorf("wire payload missing %s: %s", want, s)
		}
	}
}

func TestWireParams_EmptyAssistantTurnDropped(t *testing.T) {
	msgs := []memory.Message{
		memory.NewMessage(memory.RoleUser, "hi"),
		memory.NewMessage(memory.RoleAssistant, ""),
	}
	if got := memory.WireParams(msgs); len(got) != 1 {
		t.Fatalf("empty assistant turn must be dropped, got %d params", len(got))
	}
}
