// Package todo holds the in-memory task store behind the board.
//
// A Store is an ordered sequence of tasks. Insertion order is display order
// and there is no secondary index:
//
//	store := todo.NewStore()
//	store.Create(todo.Task{ID: id, Title: "Buy milk", Description: "2 litres"})
//	store.Update(id, todo.Patch{Description: todo.String("1 litre")})
//	store.Delete(id)
//
// # Identifiers
//
// Task ids are opaque strings produced by an IDGenerator. Two formats are
// available:
//
//   - "uuid": random (version 4) UUIDs, the default
//   - "ulid": lexically sortable ULIDs with monotonic entropy
//
// The store never checks ids for duplicates; generators are expected to be
// collision resistant.
//
// # Missing ids
//
// Update and Delete on an id that is not in the store are no-ops. They report
// whether anything changed instead of returning an error.
package todo
