package windowing_test

import (
	"testing"

	"github.com/perora/homekeeper/internal/windowing"
)

// turn is a minimal Turn for tests: "a!" assistant-with-tool-call,
// "t" tool result, anything else a singleton.
type turn string

func (t turn) StartsToolExchange() bool  { return t == "a!" }
func (t turn) AnswersToolExchange() bool { return t == "t" }

func mk(kinds ...string) []turn {
	out := make([]turn, len(kinds))
	for i, k := range kinds {
		out[i] = turn(k)
	}
	return out
}

func TestGroupTurns_PairsAssistantWithResults(t *testing.T) {
	turns := mk("u", "a!", "t", "a", "u", "a!", "t")
	groups := windowing.GroupTurns(turns)

	want := []windowing.Group{{0, 1}, {1, 3}, {3, 4}, {4, 5}, {5, 7}}
	if len(groups) != len(want) {
		t.Fatalf("group count: got %d want %d (%v)", len(groups), len(want), groups)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Fatalf("group %d: got %+v want %+v", i, groups[i], want[i])
		}
	}
}

func TestClamp_ShortHistoryUntouched(t *testing.T) {
	turns := mk("u", "a")
	window, stats := windowing.Clamp(turns, 30)
	if len(window) != 2 || stats.SkippedGroups != 0 {
		t.Fatalf("short history should pass through: %v %+v", window, stats)
	}
}

func TestClamp_NeverExceedsMax(t *testing.T) {
	kinds := make([]string, 0, 50)
	for i := 0; i < 25; i++ {
		kinds = append(kinds, "u", "a")
	}
	turns := mk(kinds...)

	window, stats := windowing.Clamp(turns, 30)
	if len(window) > 30 {
		t.Fatalf("window exceeds max: %d", len(window))
	}
	if stats.Turns != len(window) {
		t.Fatalf("stats.Turns=%d window=%d", stats.Turns, len(window))
	}
	// Newest turn must survive the clamp.
	if window[len(window)-1] != turns[len(turns)-1] {
		t.Fatal("newest turn missing from window")
	}
}

func TestClamp_DoesNotSplitToolExchange(t *testing.T) {
	// 29 singletons then an assistant+result pair: including the pair
	// whole leaves room for only 28 singletons, or the pair is dropped
	// boundary-first. Either way the pair must not be split.
	kinds := make([]string, 0, 31)
	for i := 0; i < 29; i++ {
		kinds = append(kinds, "u")
	}
	kinds = append(kinds, "a!", "t")
	turns := mk(kinds...)

	window, _ := windowing.Clamp(turns, 30)
	if len(window) > 30 {
		t.Fatalf("window exceeds max: %d", len(window))
	}
	// If the assistant tool call is present, its result must be too.
	for i, tr := range window {
		if tr.StartsToolExchange() {
			if i+1 >= len(window) || !window[i+1].AnswersToolExchange() {
				t.Fatal("tool exchange was split")
			}
		}
	}
}

func TestClamp_NewestGroupOverLimit(t *testing.T) {
	turns := mk("a!", "t", "t", "t")
	window, stats := windowing.Clamp(turns, 2)
	if window != nil || !stats.OverLimitNewest {
		t.Fatalf("expected empty window with OverLimitNewest, got %v %+v", window, stats)
	}
}
