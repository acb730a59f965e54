// Package indexer builds the persisted local index by walking
// checked-out corpus trees and segmenting every content file.
package indexer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/core/ports/driven"
	"github.com/addonkit/expressdocs/internal/core/ports/driving"
	"github.com/addonkit/expressdocs/internal/logger"
	"github.com/addonkit/expressdocs/internal/segment"
)

// Ensure Builder implements the interface.
var _ driving.IndexService = (*Builder)(nil)

// Directories that never contain documentation content.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"scripts":      true,
}

// File names excluded from indexing.
var skipFiles = map[string]bool{
	"changelog.md":       true,
	"contributing.md":    true,
	"code_of_conduct.md": true,
	"license.md":         true,
	"security.md":        true,
	"notice.md":          true,
}

// Builder walks corpus trees and persists the flattened item collection.
type Builder struct {
	store driven.IndexStore
}

// New creates an index builder writing to the given store.
func New(store driven.IndexStore) *Builder {
	return &Builder{store: store}
}

// Build walks every corpus directory, segments each markdown file and
// writes the full item collection, overwriting any prior index.
// Returns the number of items written.
func (b *Builder) Build(ctx context.Context, corpora []domain.CorpusDir) (int, error) {
	logger.Section("Index Build")

	var all []domain.KnowledgeItem
	for _, corpus := range corpora {
		items, err := b.walkCorpus(ctx, corpus)
		if err != nil {
			return 0, fmt.Errorf("walk %s: %w", corpus.Root, err)
		}
		logger.Info("Corpus %s: %d items", corpus.Source, len(items))
		all = append(all, items...)
	}

	if err := b.store.Save(ctx, all); err != nil {
		return 0, fmt.Errorf("save index: %w", err)
	}
	logger.Info("Index written: %d items", len(all))
	return len(all), nil
}

// walkCorpus segments every content file under one corpus root.
func (b *Builder) walkCorpus(ctx context.Context, corpus domain.CorpusDir) ([]domain.KnowledgeItem, error) {
	root := corpus.Root
	if corpus.BasePath != "" {
		root = filepath.Join(root, filepath.FromSlash(corpus.BasePath))
	}

	var items []domain.KnowledgeItem
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := strings.ToLower(d.Name())
		if d.IsDir() {
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".md") || skipFiles[name] {
			return nil
		}

		doc, err := b.readDocument(path, corpus)
		if err != nil {
			// Unreadable files are logged and skipped, never fatal.
			logger.Warn("Reading %s failed: %v", path, err)
			return nil
		}

		items = append(items, segment.Segment(doc)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// readDocument loads one markdown file and splits its front matter.
func (b *Builder) readDocument(path string, corpus domain.CorpusDir) (*domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(corpus.Root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	fm, body := segment.SplitFrontMatter(string(raw))
	return &domain.Document{
		Path:           rel,
		FrontMatter:    fm,
		Body:           body,
		CorpusBasePath: corpus.BasePath,
		SourceHint:     rel,
		DataSource:     corpus.Source,
	}, nil
}
