package domain

// CorpusDir points the index builder at a checked-out corpus tree.
type CorpusDir struct {
	// Root is the filesystem root of the checkout.
	Root string

	// BasePath is the path prefix under Root holding content
	// (e.g. "src/pages"), empty for the whole tree.
	BasePath string

	// Source is the corpus the tree belongs to.
	Source DataSource
}
