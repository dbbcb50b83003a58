// Package graph implements the instance store of the semlink linkage model.
// It holds typed entities and typed directed relations, validates every
// write against the schema registry, and partitions loaded data into
// namespaces so a whole load batch can be purged and reloaded.
//
// Writers take the store's exclusive lock for the duration of a single
// call; readers take a shared lock, so traversals run in parallel and never
// observe a partial write. A rejected write leaves the store unchanged.
package graph
