package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_HeadingAndParagraph(t *testing.T) {
	out := Render(Lex("## Usage\n\nAdd the component."))

	assert.Equal(t, "Usage\n\nAdd the component.", out)
}

func TestRender_List(t *testing.T) {
	out := Render(Lex("- one\n- two"))

	assert.Equal(t, "- one\n- two", out)
}

func TestRender_CodeBlock(t *testing.T) {
	out := Render(Lex("```js\nconst a = 1;\n```"))

	assert.Equal(t, "[Code Block (js)]:\nconst a = 1;", out)
}

func TestRender_CodeBlockNoLang(t *testing.T) {
	out := Render(Lex("```\nplain\n```"))

	assert.Equal(t, "[Code Block (unknown)]:\nplain", out)
}

func TestRender_Blockquote(t *testing.T) {
	out := Render(Lex("> note one\n> note two"))

	assert.Equal(t, "> note one\n> note two", out)
}

func TestRender_Table(t *testing.T) {
	out := Render(Lex("| Name | Type |\n| --- | --- |\n| size | string |"))

	assert.Equal(t, "Name | Type\nsize | string", out)
}

func TestRender_HTMLDropped(t *testing.T) {
	out := Render(Lex("<div>\n<p>ignored</p>\n</div>\n\nKept text."))

	assert.Equal(t, "Kept text.", out)
}

func TestRender_Entities(t *testing.T) {
	out := Render(Lex("Use &lt;sp-button&gt; &amp; friends."))

	assert.Equal(t, "Use <sp-button> & friends.", out)
}

func TestRender_CollapsesBlankRuns(t *testing.T) {
	out := Render(Lex("first\n\n\n\nsecond"))

	assert.Equal(t, "first\n\nsecond", out)
}

func TestInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"link", "see [the guide](https://x.test/guide)", "see the guide"},
		{"image", "![button screenshot](img.png)", "[Image: button screenshot]"},
		{"codespan", "call `addOnUISdk.ready`", "call addOnUISdk.ready"},
		{"strong", "**bold** and __more__", "bold and more"},
		{"emphasis", "*light* touch", "light touch"},
		{"html tag", "a <br/> break", "a  break"},
		{"plain", "nothing to do", "nothing to do"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Inline(tt.in))
		})
	}
}
