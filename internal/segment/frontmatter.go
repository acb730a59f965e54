package segment

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// SplitFrontMatter separates a YAML front-matter header from the
// markdown body. Files without a leading "---" line are returned
// unchanged with a nil map. A malformed header is stripped but
// contributes no metadata.
func SplitFrontMatter(raw string) (map[string]any, string) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontMatterDelim+"\n") {
		return nil, raw
	}

	rest := normalized[len(frontMatterDelim)+1:]
	end := findDelim(rest)
	if end < 0 {
		return nil, raw
	}

	header := rest[:end]
	body := rest[end:]
	if idx := strings.Index(body, "\n"); idx >= 0 {
		body = body[idx+1:]
	} else {
		body = ""
	}

	var fm map[string]any
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, body
	}
	return fm, body
}

// findDelim locates the closing "---" line within the header region.
func findDelim(s string) int {
	offset := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == frontMatterDelim {
			return offset
		}
		offset += len(line) + 1
	}
	return -1
}

// frontMatterString reads a string value from front matter.
func frontMatterString(fm map[string]any, key string) string {
	if fm == nil {
		return ""
	}
	if v, ok := fm[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// frontMatterTags reads the tags value, tolerating both YAML lists
// and comma-separated strings.
func frontMatterTags(fm map[string]any) []string {
	if fm == nil {
		return nil
	}

	var tags []string
	switch v := fm["tags"].(type) {
	case []any:
		for _, t := range v {
			if s, ok := t.(string); ok {
				tags = append(tags, strings.ToLower(strings.TrimSpace(s)))
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				tags = append(tags, strings.ToLower(s))
			}
		}
	}
	return tags
}
