// Package agent drives the tool-calling conversation loop against the
// Messages API.
//
// One submission runs an explicit state machine:
//
//	build -> stream -> exec tool -> build   (continuation after a tool call)
//	build -> stream -> done                 (no tool call requested)
//
// The continuation is a transition back to the build state inside one
// for-loop, so stack depth stays constant under long tool-call chains.
//
// Invariants:
//   - the assistant turn is committed to history exactly once per stream;
//   - a tool-result turn always references a call recorded on the
//     assistant turn immediately before it;
//   - only the most recently started tool call of a stream is tracked;
//   - one submission in flight at a time, later ones are rejected.
package agent
