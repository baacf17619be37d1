package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/perora/homekeeper/memory"
)

func TestTranscript_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "transcript.json")

	in := []memory.Message{
		{Key: 1, Role: memory.RoleUser, Content: "hi"},
		{Key: 2, Role: memory.RoleAssistant, Content: "hello", ToolCalls: []memory.ToolCall{{ID: "c1", Name: "queryItems", Arguments: "{}"}}},
		{Key: 3, Role: memory.RoleTool, Content: "[]", Name: "queryItems", ToolCallID: "c1"},
	}
	if err := memory.SaveTranscript(p, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := memory.LoadTranscript(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("length mismatch: got %d want %d", len(out), len(in))
	}
	if out[1].ToolCalls[0].ID != "c1" || out[2].ToolCallID != "c1" {
		t.Fatalf("tool linkage lost: %+v", out)
	}
}

func TestTranscript_LoadMissing_ReturnsNil(t *testing.T) {
	p := filepath.Join(t.TempDir(), "does-not-exist.json")

	msgs, err := memory.LoadTranscript(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if msgs != nil {
		t.Fatalf("expected nil slice for missing file, got %#v", msgs)
	}
}

func TestTranscript_LoadInvalidJSON_ReturnsError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte("{oops"), 0o664); err != nil {
		t.Fatalf("prep: %v", err)
	}
	if _, err := memory.LoadTranscript(p); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
