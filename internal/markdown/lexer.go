package markdown

import (
	"regexp"
	"strings"
)

// TokenType identifies a block-level markdown construct.
type TokenType int

const (
	// TokenHeading is an ATX heading (#... through ######).
	TokenHeading TokenType = iota

	// TokenParagraph is a run of plain text lines.
	TokenParagraph

	// TokenCode is a fenced code block.
	TokenCode

	// TokenBlockquote is a run of > quoted lines.
	TokenBlockquote

	// TokenList is a run of bullet or numbered list items.
	TokenList

	// TokenTable is a pipe table including its header row.
	TokenTable

	// TokenHTML is a raw HTML block.
	TokenHTML
)

// Token is one block-level markdown construct.
type Token struct {
	// Type is the block kind.
	Type TokenType

	// Level is the heading level (1-6), headings only.
	Level int

	// Lang is the fence info string, code blocks only.
	Lang string

	// Text is the block body with inline markup intact.
	// For code blocks this is the code without the fences.
	Text string

	// Items holds list item texts, lists only.
	Items []string

	// Rows holds table rows (header first, separator dropped),
	// tables only.
	Rows [][]string

	// Raw is the exact source span of the block, including fences
	// and markers.
	Raw string
}

var (
	headingRe    = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)
	fenceRe      = regexp.MustCompile("^(```|~~~)\\s*(\\S*)\\s*$")
	listItemRe   = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+(.*)$`)
	tableSepRe   = regexp.MustCompile(`^\s*\|?[\s:|-]+\|?\s*$`)
	hrRe         = regexp.MustCompile(`^\s*(?:[-*_]\s*){3,}$`)
	blockquoteRe = regexp.MustCompile(`^\s*>\s?(.*)$`)
)

// Lex splits a markdown body into an ordered sequence of block tokens.
func Lex(body string) []Token {
	lines := strings.Split(body, "\n")
	var tokens []Token

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			i++

		case headingRe.MatchString(trimmed):
			m := headingRe.FindStringSubmatch(trimmed)
			tokens = append(tokens, Token{
				Type:  TokenHeading,
				Level: len(m[1]),
				Text:  m[2],
				Raw:   line,
			})
			i++

		case fenceRe.MatchString(trimmed):
			tok, next := lexFence(lines, i)
			tokens = append(tokens, tok)
			i = next

		case blockquoteRe.MatchString(line):
			tok, next := lexBlockquote(lines, i)
			tokens = append(tokens, tok)
			i = next

		case hrRe.MatchString(trimmed) && !listItemRe.MatchString(line):
			// Horizontal rules carry no content.
			i++

		case listItemRe.MatchString(line):
			tok, next := lexList(lines, i)
			tokens = append(tokens, tok)
			i = next

		case isTableStart(lines, i):
			tok, next := lexTable(lines, i)
			tokens = append(tokens, tok)
			i = next

		case strings.HasPrefix(trimmed, "<"):
			tok, next := lexHTML(lines, i)
			tokens = append(tokens, tok)
			i = next

		default:
			tok, next := lexParagraph(lines, i)
			tokens = append(tokens, tok)
			i = next
		}
	}

	return tokens
}

func lexFence(lines []string, start int) (Token, int) {
	open := fenceRe.FindStringSubmatch(strings.TrimSpace(lines[start]))
	marker := open[1]
	lang := open[2]

	var code []string
	i := start + 1
	closed := false
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), marker) {
			closed = true
			i++
			break
		}
		code = append(code, lines[i])
		i++
	}

	end := i
	if !closed {
		end = len(lines)
	}

	return Token{
		Type: TokenCode,
		Lang: lang,
		Text: strings.Join(code, "\n"),
		Raw:  strings.Join(lines[start:end], "\n"),
	}, i
}

func lexBlockquote(lines []string, start int) (Token, int) {
	var quoted []string
	i := start
	for i < len(lines) {
		m := blockquoteRe.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		quoted = append(quoted, m[1])
		i++
	}

	return Token{
		Type: TokenBlockquote,
		Text: strings.Join(quoted, "\n"),
		Raw:  strings.Join(lines[start:i], "\n"),
	}, i
}

func lexList(lines []string, start int) (Token, int) {
	var items []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if m := listItemRe.FindStringSubmatch(line); m != nil {
			items = append(items, m[1])
			i++
			continue
		}
		// Indented continuation lines belong to the previous item.
		if len(items) > 0 && strings.TrimSpace(line) != "" &&
			(strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t")) {
			items[len(items)-1] += " " + strings.TrimSpace(line)
			i++
			continue
		}
		break
	}

	return Token{
		Type:  TokenList,
		Items: items,
		Raw:   strings.Join(lines[start:i], "\n"),
	}, i
}

func isTableStart(lines []string, i int) bool {
	if !strings.Contains(lines[i], "|") {
		return false
	}
	if i+1 >= len(lines) {
		return false
	}
	next := lines[i+1]
	return strings.Contains(next, "-") && tableSepRe.MatchString(next)
}

func lexTable(lines []string, start int) (Token, int) {
	var rows [][]string
	i := start
	for i < len(lines) {
		line := lines[i]
		if !strings.Contains(line, "|") || strings.TrimSpace(line) == "" {
			break
		}
		if i == start+1 && tableSepRe.MatchString(line) {
			i++
			continue
		}
		rows = append(rows, splitTableRow(line))
		i++
	}

	return Token{
		Type: TokenTable,
		Rows: rows,
		Raw:  strings.Join(lines[start:i], "\n"),
	}, i
}

func splitTableRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func lexHTML(lines []string, start int) (Token, int) {
	i := start
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		i++
	}

	return Token{
		Type: TokenHTML,
		Text: strings.Join(lines[start:i], "\n"),
		Raw:  strings.Join(lines[start:i], "\n"),
	}, i
}

func lexParagraph(lines []string, start int) (Token, int) {
	var para []string
	i := start
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || headingRe.MatchString(trimmed) ||
			fenceRe.MatchString(trimmed) || blockquoteRe.MatchString(line) ||
			listItemRe.MatchString(line) || isTableStart(lines, i) {
			break
		}
		para = append(para, trimmed)
		i++
	}

	return Token{
		Type: TokenParagraph,
		Text: strings.Join(para, "\n"),
		Raw:  strings.Join(lines[start:i], "\n"),
	}, i
}
