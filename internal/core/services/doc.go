// Package services implements the core business logic for expressdocs.
//
// QueryService routes queries to the local scoring engine or the
// remote searcher, owns the retrieval mode, and normalises every
// outcome into the stable response contract. The local engine itself
// is a pure function over the loaded collection.
//
// # Import Rules
//
//   - Can Import: domain, ports/driven, ports/driving, logger
//   - Cannot Import: Any adapter or connector package
package services
