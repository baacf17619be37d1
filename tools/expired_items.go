package tools

import "encoding/json"

type ExpiredItemsInput struct{}

var ExpiredItemsInputSchema = GenerateSchema[ExpiredItemsInput]()

var ExpiredItemsDefinition = ToolDefinition{
	Op:          OpExpiredItems,
	Name:        "getExpiredItems",
	Description: "List items whose expiry date has passed and that are not yet marked expired.",
	Before:      "Checking for expired items...",
	After:       "Expiry check finished. Continuing...",
	InputSchema: ExpiredItemsInputSchema,
}

func (r *Registry) expiredItems(json.RawMessage) (string, error) {
	return encode(r.store.ExpiredItems())
}
