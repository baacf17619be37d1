package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/perora/homekeeper/store"
)

// Registry binds the tool catalogue to one item store instance.
type Registry struct {
	store *store.Store
	now   func() time.Time
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClock overrides the timestamp source used by getCurrentTimestamp.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// NewRegistry returns a registry operating on st.
func NewRegistry(st *store.Store, opts ...RegistryOption) *Registry {
	r := &Registry{store: st, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Definitions returns the full catalogue advertised to the model.
func (r *Registry) Definitions() []ToolDefinition {
	return []ToolDefinition{
		CreateItemDefinition,
		UpdateItemDefinition,
		DeleteItemDefinition,
		QueryItemsDefinition,
		ExpiredItemsDefinition,
		LowStockItemsDefinition,
		CurrentTimestampDefinition,
	}
}

// Lookup returns the catalogue entry for a function name.
func (r *Registry) Lookup(name string) (ToolDefinition, bool) {
	for _, d := range r.Definitions() {
		if d.Name == name {
			return d, true
		}
	}
	return ToolDefinition{}, false
}

// Call parses input and executes the named operation, returning the
// JSON-encoded result that goes back to the model as tool_result content.
// Unknown names and malformed input both come back as errors; the caller
// converts them into non-fatal error tool results.
func (r *Registry) Call(name string, input json.RawMessage) (string, error) {
	op, ok := opFromName(name)
	if !ok {
		return "", fmt.Errorf("unknown function: %s", name)
	}
	switch op {
	case OpCreateItem:
		return r.createItem(input)
	case OpUpdateItem:
		return r.updateItem(input)
	case OpDeleteItem:
		return r.deleteItem(input)
	case OpQueryItems:
		return r.queryItems(input)
	case OpExpiredItems:
		return r.expiredItems(input)
	case OpLowStockItems:
		return r.lowStockItems(input)
	case OpCurrentTimestamp:
		return r.currentTimestamp(input)
	default:
		return "", fmt.Errorf("unhandled op %d for function %s", op, name)
	}
}

// encode marshals a tool result for the model.
func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
