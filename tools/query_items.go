package tools

import (
	"encoding/json"

	"github.com/perora/homekeeper/store"
)

var QueryItemsInputSchema = GenerateSchema[store.QueryCondition]()

var QueryItemsDefinition = ToolDefinition{
	Op:          OpQueryItems,
	Name:        "queryItems",
	Description: "Query item records. All supplied conditions must match; omit a field to leave it unconstrained.",
	Before:      "Searching items...",
	After:       "Search finished. Continuing...",
	InputSchema: QueryItemsInputSchema,
}

func (r *Registry) queryItems(input json.RawMessage) (string, error) {
	var cond store.QueryCondition
	if err := json.Unmarshal(input, &cond); err != nil {
		return "", err
	}
	return encode(r.store.QueryItems(cond))
}
