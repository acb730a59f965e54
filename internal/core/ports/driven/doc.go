// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KnowledgeStore: The in-memory knowledge collection
//   - IndexStore: Persistence for the pre-built local index
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RemoteSearcher: Live GitHub retrieval. Without it, only local
//     mode is available.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
