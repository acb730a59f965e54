package segment

import (
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/markdown"
)

// Section kind classification for level-2 headings, first match wins.
var (
	methodsHeadingRe    = regexp.MustCompile(`(?i)methods?|functions?`)
	propertiesHeadingRe = regexp.MustCompile(`(?i)properties?|attributes?|fields?|api`)
	eventsHeadingRe     = regexp.MustCompile(`(?i)events?`)
	examplesHeadingRe   = regexp.MustCompile(`(?i)examples?|usage`)
)

// Level-3 heading shapes.
var (
	callSignatureRe  = regexp.MustCompile(`^\w+\(.*\)$`)
	bareIdentifierRe = regexp.MustCompile(`^\w+(\s*:\s*[\w.\[\]<>| ]+)?$`)
)

// Segment converts one document into zero or more knowledge items,
// splitting on level-2 and level-3 heading boundaries. Every item
// shares the document's parent title, data source and source hint.
// Items whose rendered content is empty after trimming are dropped.
func Segment(doc *domain.Document) []domain.KnowledgeItem {
	tokens := markdown.Lex(doc.Body)
	relPath := corpusRelative(doc)

	baseTitle := documentTitle(doc, relPath)
	baseTags := frontMatterTags(doc.FrontMatter)
	if len(baseTags) == 0 {
		baseTags = ExtractTags(relPath, doc.DataSource)
	}

	fileName := stripExt(strings.ToLower(path.Base(relPath)))
	isIndexFile := fileName == "index"
	isLibraryOverview := doc.DataSource == domain.DataSourceSpectrum && fileName == "readme"

	firstL2 := firstHeading(tokens, 2)

	var items []domain.KnowledgeItem

	if firstL2 < 0 || isIndexFile || isLibraryOverview {
		kind := domain.KindDocumentationPage
		switch {
		case isIndexFile:
			kind = domain.KindCategoryOverview
		case isLibraryOverview:
			kind = domain.KindComponentOverview
		}
		if t := frontMatterString(doc.FrontMatter, "type"); t != "" {
			kind = t
		}
		if item, ok := newItem(doc, kind, baseTitle, baseTitle, tokens, baseTags); ok {
			items = append(items, item)
		}
		return items
	}

	// Everything before the first level-2 heading is the page overview.
	overviewKind := domain.KindPageOverview
	if t := frontMatterString(doc.FrontMatter, "type"); t != "" {
		overviewKind = t
	}
	overviewTags := append(append([]string{}, baseTags...), "overview")
	if item, ok := newItem(doc, overviewKind, baseTitle+" - Overview", baseTitle,
		tokens[:firstL2], overviewTags); ok {
		items = append(items, item)
	}

	// Split the remainder on every level-2 or level-3 heading.
	for start := firstL2; start < len(tokens); {
		end := nextBoundary(tokens, start+1)
		heading := tokens[start]

		sectionTitle := strings.ReplaceAll(heading.Text, "`", "")
		title := baseTitle + " - " + sectionTitle
		tags := append(append([]string{}, baseTags...), headingWords(heading.Text)...)

		kind := sectionKind(heading.Level, sectionTitle)
		if item, ok := newItem(doc, kind, title, baseTitle, tokens[start:end], tags); ok {
			items = append(items, item)
		}
		start = end
	}

	// Structural splitting can come up empty on degenerate documents;
	// fall back to one item covering the whole thing.
	if len(items) == 0 && len(tokens) > 0 {
		if item, ok := newItem(doc, domain.KindDocumentationPage, baseTitle,
			baseTitle, tokens, baseTags); ok {
			items = append(items, item)
		}
	}

	return items
}

// newItem renders a token span and builds an item from it. Returns
// false when the rendered content trims to nothing.
func newItem(
	doc *domain.Document, kind, title, parentTitle string,
	tokens []markdown.Token, tags []string,
) (domain.KnowledgeItem, bool) {
	content := markdown.Render(tokens)
	if content == "" {
		return domain.KnowledgeItem{}, false
	}

	raws := make([]string, len(tokens))
	for i, tok := range tokens {
		raws[i] = tok.Raw
	}

	return domain.KnowledgeItem{
		ID:          uuid.New().String(),
		Kind:        kind,
		Title:       title,
		Content:     content,
		RawMarkup:   strings.Join(raws, "\n\n"),
		SourceHint:  doc.SourceHint,
		Tags:        filterTags(dedupe(tags)),
		FrontMatter: doc.FrontMatter,
		ParentTitle: parentTitle,
		DataSource:  doc.DataSource,
	}, true
}

// sectionKind classifies a heading span. Level-2 headings group by
// topic keyword; level-3 headings are inspected for call-signature or
// identifier shapes.
func sectionKind(level int, title string) string {
	if level == 2 {
		switch {
		case methodsHeadingRe.MatchString(title):
			return domain.KindMethodsGroup
		case propertiesHeadingRe.MatchString(title):
			return domain.KindPropertiesGroup
		case eventsHeadingRe.MatchString(title):
			return domain.KindEventsGroup
		case examplesHeadingRe.MatchString(title):
			return domain.KindExamplesSection
		default:
			return domain.KindMajorSection
		}
	}

	trimmed := strings.TrimSpace(title)
	switch {
	case callSignatureRe.MatchString(trimmed):
		return domain.KindMethodDetail
	case bareIdentifierRe.MatchString(trimmed):
		return domain.KindPropertyDetail
	default:
		return domain.KindMinorSection
	}
}

// documentTitle determines the base title: front-matter title or name,
// falling back to the file's base name, or the directory name for a
// component library README.
func documentTitle(doc *domain.Document, relPath string) string {
	if t := frontMatterString(doc.FrontMatter, "title"); t != "" {
		return t
	}
	if n := frontMatterString(doc.FrontMatter, "name"); n != "" {
		return n
	}

	base := path.Base(relPath)
	if doc.DataSource == domain.DataSourceSpectrum &&
		strings.EqualFold(stripExt(base), "readme") {
		if dir := path.Base(path.Dir(relPath)); dir != "." && dir != "/" {
			return dir
		}
	}
	return stripExt(base)
}

// headingWords extracts tag candidates from a heading: lowercase
// whitespace-split words longer than one character, skipping tokens
// that contain backticks.
func headingWords(heading string) []string {
	var words []string
	for _, w := range strings.Fields(heading) {
		if strings.Contains(w, "`") {
			continue
		}
		w = strings.ToLower(w)
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// firstHeading returns the index of the first heading token at the
// given level, or -1.
func firstHeading(tokens []markdown.Token, level int) int {
	for i, tok := range tokens {
		if tok.Type == markdown.TokenHeading && tok.Level == level {
			return i
		}
	}
	return -1
}

// nextBoundary finds the next level-2 or level-3 heading at or after i.
func nextBoundary(tokens []markdown.Token, i int) int {
	for ; i < len(tokens); i++ {
		if tokens[i].Type == markdown.TokenHeading &&
			(tokens[i].Level == 2 || tokens[i].Level == 3) {
			return i
		}
	}
	return len(tokens)
}

// corpusRelative strips the corpus base path prefix from the
// document's path.
func corpusRelative(doc *domain.Document) string {
	rel := strings.TrimPrefix(doc.Path, doc.CorpusBasePath)
	return strings.TrimPrefix(rel, "/")
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
