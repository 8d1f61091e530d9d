// Package directory provides the CustomerDirectory implementations.
//
// # Implementations
//
//   - SimulatedDirectory answers from an in-memory repository after a fixed delay,
//     standing in for a slow remote customer service
//   - CachedDirectory keeps a snapshot of the persistent repository and falls back
//     to it on a miss; jobs refresh the snapshot periodically
//
// The in-memory side also provides MemoryRepository and a staging unit of work so
// the register-customer use case works without a database.
//
// # Seeding
//
// Customers can be loaded from a YAML file:
//
//	customers:
//	  - code: "1001"
//	    taxId: "123.456.789-01"
//	    name: João Silva
//
// DefaultCustomers returns the built-in demo set used when no file is given.
package directory
