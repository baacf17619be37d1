// Package memory holds conversation state and its persistence.
//
// Model:
//   - Message: one turn (user/assistant/system/tool) with role-specific
//     fields; assistant turns record requested tool calls, tool turns
//     reference the call they answer.
//   - History: append-only transcript; Recent() yields the newest 30
//     turns for the wire request, never splitting a tool exchange.
//
// Persistence stores the full transcript as JSON so a restarted session
// replays prior display history.
package memory
