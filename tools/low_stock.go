package tools

import "encoding/json"

type LowStockInput struct {
	Threshold *int `json:"threshold,omitempty" jsonschema_description:"Quantity at or below which an item counts as low stock (default 1)."`
}

// defaultLowStockThreshold applies when the model omits the threshold.
const defaultLowStockThreshold = 1

var LowStockInputSchema = GenerateSchema[LowStockInput]()

var LowStockItemsDefinition = ToolDefinition{
	Op:          OpLowStockItems,
	Name:        "getLowStockItems",
	Description: "List items running low, i.e. with quantity at or below the threshold.",
	Before:      "Checking stock levels...",
	After:       "Stock check finished. Continuing...",
	InputSchema: LowStockInputSchema,
}

func (r *Registry) lowStockItems(input json.RawMessage) (string, error) {
	var in LowStockInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	threshold := defaultLowStockThreshold
	if in.Threshold != nil {
		threshold = *in.Threshold
	}
	return encode(r.store.LowStockItems(threshold))
}
