package tools

import (
	"encoding/json"
	"fmt"

	"github.com/perora/homekeeper/store"
)

type UpdateItemInput struct {
	ID      string          `json:"id" jsonschema_description:"Item id; obtain it via queryItems first."`
	Updates store.ItemPatch `json:"updates" jsonschema_description:"Fields to change; omitted fields keep their value."`
}

var UpdateItemInputSchema = GenerateSchema[UpdateItemInput]()

var UpdateItemDefinition = ToolDefinition{
	Op:          OpUpdateItem,
	Name:        "updateItem",
	Description: "Update an existing item. Query items first to obtain the id, then call this with the fields to change.",
	Before:      "Updating item...",
	After:       "Item updated. Continuing...",
	InputSchema: UpdateItemInputSchema,
}

func (r *Registry) updateItem(input json.RawMessage) (string, error) {
	var in UpdateItemInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.ID == "" {
		return "", fmt.Errorf("updateItem: id is required")
	}
	updated, ok := r.store.UpdateItem(in.ID, in.Updates)
	if !ok {
		// Not an error: the model should see the negative result and
		// explain it to the user.
		return encode(nil)
	}
	return encode(updated)
}
