package tools

import (
	"encoding/json"
	"fmt"
)

type DeleteItemInput struct {
	ID string `json:"id" jsonschema_description:"Item id; obtain it via queryItems first."`
}

var DeleteItemInputSchema = GenerateSchema[DeleteItemInput]()

var DeleteItemDefinition = ToolDefinition{
	Op:          OpDeleteItem,
	Name:        "deleteItem",
	Description: "Delete an item by id. Query items first to obtain the id.",
	Before:      "Deleting item...",
	After:       "Item deleted. Continuing...",
	InputSchema: DeleteItemInputSchema,
}

type deleteItemResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (r *Registry) deleteItem(input json.RawMessage) (string, error) {
	var in DeleteItemInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.ID == "" {
		return "", fmt.Errorf("deleteItem: id is required")
	}
	// Deleting an absent id reports deleted=false rather than failing.
	return encode(deleteItemResult{ID: in.ID, Deleted: r.store.DeleteItem(in.ID)})
}
