// Package github implements the remote search client against the
// GitHub code search and contents APIs.
//
// One Searcher serves both documentation corpora. A query fans out
// into bounded per-corpus code searches (scoped by repository, path
// and extension), the merged top matches are fetched and segmented
// on demand, and a client-side term filter restores the precision
// that remote search lacks (it matches file names and paths, not
// section content).
//
// Authentication is optional: without a token the client proceeds
// unauthenticated at GitHub's lower rate limits.
package github
