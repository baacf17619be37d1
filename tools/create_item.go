package tools

import (
	"encoding/json"
	"fmt"

	"github.com/perora/homekeeper/store"
)

type CreateItemInput struct {
	Items []store.ItemInput `json:"items" jsonschema_description:"Items to create; ids and timestamps are generated server-side."`
}

var CreateItemInputSchema = GenerateSchema[CreateItemInput]()

var CreateItemDefinition = ToolDefinition{
	Op:          OpCreateItem,
	Name:        "createItem",
	Description: "Create one or more new item records. Ids, createDate and updateDate are generated automatically.",
	Before:      "Creating items...",
	After:       "Items created. Continuing...",
	InputSchema: CreateItemInputSchema,
}

func (r *Registry) createItem(input json.RawMessage) (string, error) {
	var in CreateItemInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if len(in.Items) == 0 {
		return "", fmt.Errorf("createItem: items must not be empty")
	}
	return encode(r.store.CreateItems(in.Items))
}
