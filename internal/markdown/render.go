package markdown

import (
	"regexp"
	"strings"
)

var (
	imageRe    = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	codespanRe = regexp.MustCompile("`([^`]*)`")
	strongRe   = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	emphasisRe = regexp.MustCompile(`\*([^*]+)\*|\b_([^_]+)_\b`)
	htmlTagRe  = regexp.MustCompile(`<[^>]+>`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// entityReplacer unescapes the five standard HTML entities. &amp; is
// last so doubly-escaped text is not over-unescaped.
var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

// Render converts a token sequence into human-readable plain text.
// Headings and paragraphs become text with blank-line separation,
// list items become "- item" lines, code blocks are kept verbatim
// under a language banner, raw HTML is dropped. Runs of blank lines
// collapse to at most one and the result is trimmed.
func Render(tokens []Token) string {
	var b strings.Builder

	for _, tok := range tokens {
		switch tok.Type {
		case TokenHeading, TokenParagraph:
			b.WriteString(Inline(tok.Text))
			b.WriteString("\n\n")

		case TokenList:
			for _, item := range tok.Items {
				b.WriteString("- ")
				b.WriteString(Inline(item))
				b.WriteString("\n")
			}
			b.WriteString("\n")

		case TokenCode:
			lang := tok.Lang
			if lang == "" {
				lang = "unknown"
			}
			b.WriteString("[Code Block (" + lang + ")]:\n")
			b.WriteString(tok.Text)
			b.WriteString("\n\n")

		case TokenBlockquote:
			for _, line := range strings.Split(tok.Text, "\n") {
				b.WriteString("> ")
				b.WriteString(Inline(line))
				b.WriteString("\n")
			}
			b.WriteString("\n")

		case TokenTable:
			for _, row := range tok.Rows {
				cells := make([]string, len(row))
				for i, cell := range row {
					cells[i] = Inline(cell)
				}
				b.WriteString(strings.Join(cells, " | "))
				b.WriteString("\n")
			}
			b.WriteString("\n")

		case TokenHTML:
			// Raw HTML blocks are dropped.
		}
	}

	out := blankRunRe.ReplaceAllString(b.String(), "\n\n")
	out = strings.TrimSpace(out)
	return entityReplacer.Replace(out)
}

// Inline unwraps inline markup to its text: images become
// "[Image: alt]", links keep their label, emphasis, strong and
// codespans lose their markers, inline HTML is dropped.
func Inline(text string) string {
	text = imageRe.ReplaceAllString(text, "[Image: $1]")
	text = linkRe.ReplaceAllString(text, "$1")
	text = codespanRe.ReplaceAllString(text, "$1")
	text = strongRe.ReplaceAllString(text, "$1$2")
	text = emphasisRe.ReplaceAllString(text, "$1$2")
	text = htmlTagRe.ReplaceAllString(text, "")
	return text
}
