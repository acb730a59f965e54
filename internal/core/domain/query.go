package domain

import "strings"

// Mode selects the retrieval backend for queries.
type Mode string

const (
	// ModeGitHub retrieves by live GitHub code search plus on-demand
	// fetch and segmentation.
	ModeGitHub Mode = "github"

	// ModeLocal retrieves from the pre-built in-memory collection.
	ModeLocal Mode = "local"
)

// AvailableModes lists every valid retrieval mode.
func AvailableModes() []Mode {
	return []Mode{ModeGitHub, ModeLocal}
}

// ParseMode converts user input to a Mode. "remote" is accepted as a
// synonym for the GitHub backend.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "github", "remote":
		return ModeGitHub, nil
	case "local":
		return ModeLocal, nil
	default:
		return "", ErrInvalidMode
	}
}

// MaxResults is the hard cap on items returned per query,
// regardless of backend.
const MaxResults = 10

// Confidence priors for query responses. The values are heuristic
// convention, not calibrated probabilities; only their relative
// ordering is load-bearing (default < local no-match < remote
// filtered-out < remote match < local match).
const (
	// ConfidenceDefault is the prior before any search produced
	// usable signal (also used when the local collection is empty).
	ConfidenceDefault = 0.2

	// ConfidenceNoLocalMatch applies when a loaded local collection
	// scored zero items.
	ConfidenceNoLocalMatch = 0.3

	// ConfidenceRemoteFiltered applies when remote fetch and
	// segmentation ran but the term filter dropped every item.
	ConfidenceRemoteFiltered = 0.35

	// ConfidenceRemoteMatch applies when remote search produced items.
	ConfidenceRemoteMatch = 0.7

	// ConfidenceLocalMatch applies when local scoring produced items.
	ConfidenceLocalMatch = 0.8
)

// QueryOptions configures a single query.
type QueryOptions struct {
	// Source constrains the search to one corpus. Empty or TargetAll
	// leaves the target to the query-text heuristic.
	Source string
}

// QueryResponse is the stable output contract for every query.
// Results is never empty: zero-result conditions are represented by
// placeholder items.
type QueryResponse struct {
	// Query echoes the query text.
	Query string `json:"query"`

	// Results holds at most MaxResults items.
	Results []KnowledgeItem `json:"results"`

	// Confidence is in [0,1].
	Confidence float64 `json:"confidenceScore"`

	// ModeUsed is the backend that served the query.
	ModeUsed Mode `json:"modeUsed"`

	// Summary is a human-readable one-line description of the outcome.
	Summary string `json:"summary"`
}

// Capabilities describes what the server can answer right now.
type Capabilities struct {
	// SupportedKeywords holds at most 40 topical keywords, derived
	// from the loaded collection's tags or a fixed fallback list.
	SupportedKeywords []string `json:"supportedKeywords"`

	// SourceDescription describes where documentation comes from.
	SourceDescription string `json:"documentationSourceDescription"`

	// CurrentMode is the active retrieval mode.
	CurrentMode Mode `json:"currentMode"`

	// AvailableModes lists every valid mode.
	AvailableModes []Mode `json:"availableModes"`
}

// ResolveTarget picks the effective corpus for a query. An explicit
// hint other than TargetAll wins; otherwise the query text is
// inspected case-insensitively. An empty result leaves the search
// unconstrained.
func ResolveTarget(query, hint string) DataSource {
	if hint != "" && hint != TargetAll {
		return DataSource(hint)
	}

	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "spectrum") || strings.HasPrefix(q, "sp-"):
		return DataSourceSpectrum
	case strings.Contains(q, "express") || strings.Contains(q, "addon"):
		return DataSourceAddOns
	default:
		return ""
	}
}
