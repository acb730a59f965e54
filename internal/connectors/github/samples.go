package github

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

// sampleRef maps one add-on feature keyword to a sample file and the
// keywords that locate the relevant code inside it.
type sampleRef struct {
	path     string
	keywords []string
}

// Feature keyword to sample file mapping in the samples repository.
var sampleRefs = map[string]sampleRef{
	"dialog": {
		path:     "samples/dialog-add-on/src/index.js",
		keywords: []string{"showmodaldialog", "dialog"},
	},
	"import-local-images": {
		path:     "samples/import-images-from-local/src/index.js",
		keywords: []string{"addimage", "import"},
	},
	"import-oauth-images": {
		path:     "samples/import-images-using-oauth/src/index.js",
		keywords: []string{"oauth", "authorize"},
	},
	"export": {
		path:     "samples/export-sample/src/index.js",
		keywords: []string{"createrendition", "export"},
	},
	"client-storage": {
		path:     "samples/use-client-storage/src/index.js",
		keywords: []string{"clientstorage", "setitem"},
	},
	"drag-and-drop": {
		path:     "samples/pix/src/index.js",
		keywords: []string{"enabledragtodocument", "drag"},
	},
	"premium-content": {
		path:     "samples/licensed-addon/src/index.js",
		keywords: []string{"ispremiumuser", "premium"},
	},
	"audio": {
		path:     "samples/audio-recording-add-on/src/index.js",
		keywords: []string{"mediarecorder", "audio"},
	},
}

// Snippet extraction bounds.
const (
	snippetLeadLines     = 5
	snippetMaxBodyLines  = 60
	snippetFallbackLines = 40
)

// SupportedFeatures lists the feature keywords SampleSnippet understands.
func (s *Searcher) SupportedFeatures() []string {
	features := make([]string, 0, len(sampleRefs))
	for f := range sampleRefs {
		features = append(features, f)
	}
	sort.Strings(features)
	return features
}

// SampleSnippet fetches the sample file mapped to a feature keyword
// and extracts its most relevant code block.
func (s *Searcher) SampleSnippet(ctx context.Context, feature string) (string, error) {
	ref, ok := sampleRefs[strings.ToLower(strings.TrimSpace(feature))]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownFeature, feature)
	}

	content, err := s.client.GetFileContent(ctx, samplesOwner, samplesRepo, ref.path, "")
	if err != nil {
		return "", fmt.Errorf("fetch sample %s: %w", ref.path, err)
	}

	return extractSnippet(content, ref.keywords), nil
}

// extractSnippet scans for a line containing a feature keyword next
// to a function or assignment indicator, then captures from a few
// lines of lead-in context to the matching closing brace. Files with
// no such line fall back to a bounded head of the file.
func extractSnippet(content string, keywords []string) string {
	lines := strings.Split(content, "\n")

	at := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		if !containsAny(lower, keywords) {
			continue
		}
		if strings.Contains(lower, "function") || strings.Contains(lower, "=>") ||
			strings.Contains(lower, "= ") || strings.Contains(lower, "addeventlistener") {
			at = i
			break
		}
	}

	if at < 0 {
		end := min(snippetFallbackLines, len(lines))
		return strings.TrimSpace(strings.Join(lines[:end], "\n"))
	}

	start := max(0, at-snippetLeadLines)
	end := closingBrace(lines, at)
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

// closingBrace finds the line after the brace balancing the first
// opening brace at or after the match, bounded to keep snippets short.
func closingBrace(lines []string, from int) int {
	depth := 0
	opened := false
	limit := min(from+snippetMaxBodyLines, len(lines))

	for i := from; i < limit; i++ {
		for _, r := range lines[i] {
			switch r {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
			}
		}
		if opened && depth <= 0 {
			return i + 1
		}
	}
	return limit
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
