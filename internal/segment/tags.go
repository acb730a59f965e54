package segment

import (
	"path"
	"strings"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

// Structural path segments that never make meaningful tags.
var structuralTags = map[string]bool{
	"":      true,
	"src":   true,
	"pages": true,
	"index": true,
}

// Spectrum repository directories dropped before tag derivation.
var spectrumStructural = map[string]bool{
	"packages": true,
	"stories":  true,
	"src":      true,
	"docs":     true,
	"test":     true,
}

// ExtractTags derives topical labels for a document from its path
// within the corpus.
func ExtractTags(relPath string, source domain.DataSource) []string {
	switch source {
	case domain.DataSourceSpectrum:
		return filterTags(spectrumTags(relPath))
	default:
		return filterTags(sdkTags(relPath))
	}
}

// sdkTags tags an SDK docs file with every directory segment plus the
// file name itself, unless the file is an index page.
func sdkTags(relPath string) []string {
	segments := splitPath(relPath)
	if len(segments) == 0 {
		return nil
	}

	name := stripExt(segments[len(segments)-1])
	tags := segments[:len(segments)-1]
	if name != "index" {
		tags = append(tags, name)
	}
	return tags
}

// spectrumTags tags a component library file. A package README is
// tagged with the component name alone; other files keep their
// meaningful path segments with the component name first.
func spectrumTags(relPath string) []string {
	segments := splitPath(relPath)
	if len(segments) == 0 {
		return nil
	}

	component := componentName(segments)
	name := stripExt(segments[len(segments)-1])

	if component != "" && name == "readme" && segments[len(segments)-2] == component {
		return []string{component}
	}

	var tags []string
	for _, seg := range segments[:len(segments)-1] {
		if !spectrumStructural[seg] {
			tags = append(tags, seg)
		}
	}

	if component != "" && !contains(tags, component) {
		tags = append([]string{component}, tags...)
	}

	if name != "index" && name != "readme" && !contains(tags, name) {
		tags = append(tags, name)
	}
	return tags
}

// componentName returns the path segment following "packages", if any.
func componentName(segments []string) string {
	for i, seg := range segments[:len(segments)-1] {
		if seg == "packages" && i+1 < len(segments)-1 {
			return segments[i+1]
		}
	}
	// Paths already relative to packages/ start with the component.
	if len(segments) > 1 && !spectrumStructural[segments[0]] {
		return segments[0]
	}
	return ""
}

// filterTags drops empty strings, structural tokens and
// leading-underscore segments.
func filterTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if structuralTags[t] || strings.HasPrefix(t, "_") {
			continue
		}
		out = append(out, t)
	}
	return out
}

func splitPath(relPath string) []string {
	clean := strings.ToLower(path.Clean(strings.ReplaceAll(relPath, "\\", "/")))
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || clean == "." {
		return nil
	}
	return strings.Split(clean, "/")
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
