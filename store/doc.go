// Package store owns the household item collection.
//
// Model:
//   - Item: id, category/status enums, prices, dates, quantities.
//   - Ids and create/update timestamps are stamped by the store; caller
//     supplied values for them are never accepted.
//
// Persistence:
//   - One JSON slot file, loaded once at Open and rewritten in full after
//     every mutation. Writes are best-effort: a failed write is logged and
//     reported, the in-memory mutation stands.
package store
