// Package markdown provides a line-oriented block lexer and a
// plain-text renderer for markdown documents.
//
// The lexer splits a document body into an ordered sequence of
// block-level tokens while preserving the exact raw source span of
// each block, which the segmenter needs to carry original markup
// alongside the rendered text. The renderer strips all markup and
// produces readable plain text.
package markdown
