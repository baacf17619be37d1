package tools

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// Op identifies one executable operation. Dispatch is a closed switch
// over this set, so an unhandled op is a compile-visible gap rather than
// a silent map miss.
type Op int

const (
	OpCreateItem Op = iota
	OpUpdateItem
	OpDeleteItem
	OpQueryItems
	OpExpiredItems
	OpLowStockItems
	OpCurrentTimestamp
)

// opFromName maps a model-supplied function name onto the closed op set.
func opFromName(name string) (Op, bool) {
	switch name {
	case "createItem":
		return OpCreateItem, true
	case "updateItem":
		return OpUpdateItem, true
	case "deleteItem":
		return OpDeleteItem, true
	case "queryItems":
		return OpQueryItems, true
	case "getExpiredItems":
		return OpExpiredItems, true
	case "getLowStockItems":
		return OpLowStockItems, true
	case "getCurrentTimestamp":
		return OpCurrentTimestamp, true
	}
	return 0, false
}

// ToolDefinition describes one catalogue entry: the schema advertised to
// the model plus the status lines shown around an invocation. Execution
// lives in Registry.Call so the catalogue and the dispatch cannot drift
// apart on names.
type ToolDefinition struct {
	Op          Op
	Name        string
	Description string
	Before      string // status line while the tool runs
	After       string // status line once it completes
	InputSchema anthropic.ToolInputSchemaParam
}

// GenerateSchema derives the JSON input schema for T from its struct tags.
func GenerateSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
		Required:   schema.Required,
	}
}
