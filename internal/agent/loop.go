package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/perora/homekeeper/internal/telemetry"
	"github.com/perora/homekeeper/memory"
	"github.com/perora/homekeeper/store"
	"github.com/perora/homekeeper/tools"
)

// ErrBusy is returned when Submit is called while a prior submission is
// still streaming; the new submission is a no-op rather than a cancel.
var ErrBusy = errors.New("agent: a request is already in flight")

const maxReplyTokens = 1024

const preambleFormat = `You are a friendly assistant that helps people keep track of their household items: adding, finding, updating and deleting item records.
Use the current time as the reference point for any date reasoning. Current time: %s.
When you cannot tell whether a request belongs to item management, prefer calling a reasonable tool to find out. If the request is clearly unrelated, briefly state your role and politely decline without offering further suggestions.`

// Callbacks surface loop progress to the rendering boundary. Either
// field may be nil.
type Callbacks struct {
	// OnContent fires for every streamed content fragment; full is the
	// assistant text accumulated so far. This is the only path that
	// updates the visible reply mid-stream.
	OnContent func(delta, full string)
	// OnStatus fires with a tool's before/after status line.
	OnStatus func(status string)
}

// state is one node of the submission state machine.
type state int

const (
	stateBuild state = iota
	stateStream
	stateExecTool
	stateDone
)

// toolCall accumulates one streamed function invocation. args collects
// partial JSON fragments in arrival order and is parsed only after the
// stream ends.
type toolCall struct {
	id   string
	name string
	args strings.Builder
}

// Loop owns one conversation with the model.
type Loop struct {
	client *anthropic.Client
	model  anthropic.Model
	reg    *tools.Registry
	hist   *memory.History
	now    func() time.Time
	cb     Callbacks
	busy   atomic.Bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock overrides the time source used in the system preamble.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

// WithCallbacks installs rendering callbacks.
func WithCallbacks(cb Callbacks) Option {
	return func(l *Loop) { l.cb = cb }
}

// New wires a loop over an explicitly provided registry and history.
func New(client *anthropic.Client, model anthropic.Model, reg *tools.Registry, hist *memory.History, opts ...Option) *Loop {
	l := &Loop{
		client: client,
		model:  model,
		reg:    reg,
		hist:   hist,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// History exposes the transcript for rendering and persistence.
func (l *Loop) History() *memory.History { return l.hist }

// Busy reports whether a submission is currently in flight.
func (l *Loop) Busy() bool { return l.busy.Load() }

// Submit runs one full user turn: append the user message, then cycle
// build -> stream -> exec-tool until the model answers without
// requesting a tool. A submission while one is in flight returns ErrBusy
// and changes nothing. A stream failure is returned to the caller with
// the busy flag already cleared.
func (l *Loop) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if !l.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer l.busy.Store(false)

	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = fmt.Sprintf("turn-%d", l.now().UnixNano())
		ctx = telemetry.WithTurnID(ctx, turnID)
	}

	l.hist.Append(memory.NewMessage(memory.RoleUser, text))

	var (
		st      = stateBuild
		params  anthropic.MessageNewParams
		pending *toolCall
	)
	for {
		switch st {
		case stateBuild:
			params = l.buildParams(turnID)
			st = stateStream
		case stateStream:
			call, err := l.streamOnce(ctx, params)
			if err != nil {
				return err
			}
			pending = call
			if pending != nil {
				st = stateExecTool
			} else {
				st = stateDone
			}
		case stateExecTool:
			l.execTool(ctx, pending)
			pending = nil
			st = stateBuild
		case stateDone:
			return nil
		}
	}
}

// buildParams assembles the outgoing request: system preamble with the
// current time, the pair-safe recent window, the full tool catalogue and
// tool_choice auto.
func (l *Loop) buildParams(turnID string) anthropic.MessageNewParams {
	recent := l.hist.Recent()

	telemetry.Emit("window_prepared", map[string]any{
		"turn_id":     turnID,
		"model":       string(l.model),
		"turns_sent":  len(recent),
		"turns_total": l.hist.Len(),
	})

	defs := l.reg.Definitions()
	toolParams := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, t := range defs {
		toolParams = append(toolParams, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}

	return anthropic.MessageNewParams{
		Model:     l.model,
		MaxTokens: int64(maxReplyTokens),
		System: []anthropic.TextBlockParam{
			{Text: fmt.Sprintf(preambleFormat, l.now().Format(store.TimestampLayout))},
		},
		Messages:   memory.WireParams(recent),
		Tools:      toolParams,
		ToolChoice: anthropic.ToolChoiceUnionParam{OfAuto: &anthropic.ToolChoiceAutoParam{}},
	}
}

// streamOnce consumes one streamed reply, mirrors content fragments to
// the callbacks, and commits the assistant turn to history exactly once.
// It returns the accumulated tool call, or nil when the model finished
// without requesting one.
func (l *Loop) streamOnce(ctx context.Context, params anthropic.MessageNewParams) (*toolCall, error) {
	stream := l.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	asst := memory.NewMessage(memory.RoleAssistant, "")
	var pending *toolCall

	for stream.Next() {
		event := stream.Current()
		switch ev := event.AsAny().(type) {
		case anthropic.ContentBlockStartEvent:
			if tu, ok := ev.ContentBlock.AsAny().(anthropic.ToolUseBlock); ok {
				// A new call id resets the argument buffer; only the most
				// recently started call is tracked.
				pending = &toolCall{id: tu.ID, name: tu.Name}
			}
		case anthropic.ContentBlockDeltaEvent:
			switch d := ev.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				asst.Content += d.Text
				if l.cb.OnContent != nil {
					l.cb.OnContent(d.Text, asst.Content)
				}
			case anthropic.InputJSONDelta:
				if pending != nil {
					pending.args.WriteString(d.PartialJSON)
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}

	if pending != nil && strings.TrimSpace(pending.args.String()) == "" {
		// Zero-argument tools stream a tool_use block with no
		// input_json_delta fragments at all; dispatch them with an
		// empty object.
		pending.args.Reset()
		pending.args.WriteString("{}")
	}
	if pending != nil {
		asst.ToolCalls = []memory.ToolCall{{ID: pending.id, Name: pending.name, Arguments: pending.args.String()}}
	}
	l.hist.Append(asst)
	return pending, nil
}

// execTool dispatches the accumulated call and appends the tool-result
// turn. Unknown functions, malformed arguments and execution failures
// all become error-flagged tool results for the model to explain; none
// of them stop the loop.
func (l *Loop) execTool(ctx context.Context, call *toolCall) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	def, known := l.reg.Lookup(call.name)
	if known && l.cb.OnStatus != nil {
		l.cb.OnStatus(def.Before)
	}

	start := time.Now()
	input := json.RawMessage(call.args.String())
	out, err := l.reg.Call(call.name, input)

	fields := map[string]any{
		"tool_name":   call.name,
		"duration_ms": time.Since(start).Milliseconds(),
		"input_size":  len(input),
		"output_size": len(out),
		"turn_id":     turnID,
	}
	if err != nil {
		// Generic marker only; the detailed message goes to the model.
		fields["error"] = "tool error"
	} else {
		fields["error"] = nil
	}
	telemetry.Emit("tool_exec", fields)

	if err != nil {
		l.hist.Append(memory.NewToolResult(call.id, call.name, err.Error(), true))
		return
	}
	l.hist.Append(memory.NewToolResult(call.id, call.name, out, false))
	if known && l.cb.OnStatus != nil {
		l.cb.OnStatus(def.After)
	}
}
