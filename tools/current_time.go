package tools

import (
	"encoding/json"

	"github.com/perora/homekeeper/store"
)

type CurrentTimestampInput struct{}

var CurrentTimestampInputSchema = GenerateSchema[CurrentTimestampInput]()

var CurrentTimestampDefinition = ToolDefinition{
	Op:          OpCurrentTimestamp,
	Name:        "getCurrentTimestamp",
	Description: "Get the current date and time, for reasoning about expiry dates and purchase ranges.",
	Before:      "Reading the clock...",
	After:       "Clock read. Continuing...",
	InputSchema: CurrentTimestampInputSchema,
}

type currentTimestampResult struct {
	Timestamp string `json:"timestamp"`
}

func (r *Registry) currentTimestamp(json.RawMessage) (string, error) {
	return encode(currentTimestampResult{Timestamp: r.now().Format(store.TimestampLayout)})
}
