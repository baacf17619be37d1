// Package tools defines the tool catalogue the model may invoke and its
// dispatch over the item store.
//
// Includes:
//   - ToolDefinition: name, description, status lines, JSON input schema.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Op / Registry.Call: closed-set dispatch; unknown function names hit
//     one explicit error arm instead of a map miss.
//   - Item tools: createItem, updateItem, deleteItem, queryItems,
//     getExpiredItems, getLowStockItems, getCurrentTimestamp.
package tools
