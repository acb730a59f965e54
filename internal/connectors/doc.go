// Package connectors holds adapters for external data sources. The
// github subpackage searches and fetches the documentation corpora
// live via the GitHub API.
package connectors
