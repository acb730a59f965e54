package domain

// DataSource identifies which documentation corpus an item came from.
type DataSource string

const (
	// DataSourceAddOns is the Adobe Express add-ons SDK documentation.
	DataSourceAddOns DataSource = "express-add-ons-docs"

	// DataSourceSpectrum is the Spectrum Web Components library documentation.
	DataSourceSpectrum DataSource = "spectrum-web-components"

	// DataSourceCodeSample is the add-on code samples repository.
	DataSourceCodeSample DataSource = "code-sample"

	// DataSourceUnknown is used when the origin cannot be determined.
	DataSourceUnknown DataSource = "unknown"
)

// TargetAll is the source hint meaning "search every corpus".
const TargetAll = "all"

// Item kinds produced by segmentation. The set is open: callers must
// tolerate kinds they do not recognise.
const (
	KindCategoryOverview  = "category_overview"
	KindComponentOverview = "spectrum_component_overview"
	KindDocumentationPage = "documentation_page"
	KindPageOverview      = "page_overview"
	KindMajorSection      = "major_section"
	KindMinorSection      = "minor_section"
	KindMethodsGroup      = "class_methods_group"
	KindPropertiesGroup   = "class_properties_group"
	KindEventsGroup       = "class_events_group"
	KindExamplesSection   = "examples_section"
	KindMethodDetail      = "class_method_detail"
	KindPropertyDetail    = "class_property_detail"

	// Placeholder kinds for empty-result and error conditions.
	// Callers always receive a non-empty item list; these stand in
	// for results that do not exist.
	KindNoMatchLocal   = "no_match_local"
	KindNoMatchGitHub  = "no_match_github"
	KindErrKBNotLoaded = "error_kb_not_loaded"
	KindErrGitHub      = "error_github_search"
)

// KnowledgeItem is the atomic retrievable unit of documentation,
// roughly one heading's worth of content. Items are pure derived data:
// the segmenter constructs them from a Document and they are immutable
// afterwards.
type KnowledgeItem struct {
	// ID is the unique identifier for the item.
	ID string `json:"id"`

	// Kind classifies the item (e.g. "page_overview", "class_method_detail").
	// Open string enumeration.
	Kind string `json:"kind"`

	// Title is the display title. Sub-sections are formatted as
	// "<document title> - <section title>".
	Title string `json:"title"`

	// Content is the plain-text rendering of the section, never
	// empty after trimming.
	Content string `json:"content"`

	// RawMarkup is the original markdown for the section, preserved
	// for clients that want formatting. Optional.
	RawMarkup string `json:"rawMarkup,omitempty"`

	// SourceHint is a human-followable reference to the origin
	// (URL or file path).
	SourceHint string `json:"sourceHint"`

	// Tags are lowercase topical labels derived from path structure
	// or explicit front-matter. Order is irrelevant.
	Tags []string `json:"tags"`

	// FrontMatter is arbitrary key-value metadata parsed from the
	// document header. Optional.
	FrontMatter map[string]any `json:"frontMatter,omitempty"`

	// ParentTitle is the title of the enclosing document, shared by
	// every item produced from one document. Optional.
	ParentTitle string `json:"parentTitle,omitempty"`

	// DataSource identifies the corpus the item came from.
	DataSource DataSource `json:"dataSource"`
}

// HasTag reports whether the item carries the given tag.
func (k *KnowledgeItem) HasTag(tag string) bool {
	for _, t := range k.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Document is one source markdown file after front-matter extraction.
type Document struct {
	// Path is the file path within its corpus.
	Path string

	// FrontMatter holds the parsed YAML header, nil if absent.
	FrontMatter map[string]any

	// Body is the markdown after front-matter extraction.
	Body string

	// CorpusBasePath is the path prefix used to compute relative
	// tags and links (e.g. "src/pages").
	CorpusBasePath string

	// SourceHint is carried onto every item produced from this
	// document (URL for fetched files, path for walked files).
	SourceHint string

	// DataSource identifies the corpus the document came from.
	DataSource DataSource
}

// SearchResultRef is a transient reference returned by remote search.
// It schedules a content fetch and does not persist.
type SearchResultRef struct {
	// Name is the file name.
	Name string

	// Path is the file path within the repository.
	Path string

	// SHA is the blob SHA of the matched file.
	SHA string

	// Corpus identifies which corpus matched.
	Corpus DataSource

	// Score is the relevance score; missing scores are treated as 0.
	Score float64
}
