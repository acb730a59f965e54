package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontMatter_Valid(t *testing.T) {
	raw := "---\ntitle: Dialogs\ntags:\n  - dialog\n  - modal\n---\n# Body\n"

	fm, body := SplitFrontMatter(raw)

	require.NotNil(t, fm)
	assert.Equal(t, "Dialogs", fm["title"])
	assert.Equal(t, "# Body\n", body)
}

func TestSplitFrontMatter_NoHeader(t *testing.T) {
	raw := "# Just a document\n"

	fm, body := SplitFrontMatter(raw)

	assert.Nil(t, fm)
	assert.Equal(t, raw, body)
}

func TestSplitFrontMatter_UnclosedHeader(t *testing.T) {
	raw := "---\ntitle: Broken\n# Body"

	fm, body := SplitFrontMatter(raw)

	assert.Nil(t, fm)
	assert.Equal(t, raw, body)
}

func TestSplitFrontMatter_MalformedYAML(t *testing.T) {
	raw := "---\n: [not yaml\n---\n# Body\n"

	fm, body := SplitFrontMatter(raw)

	assert.Nil(t, fm)
	assert.Equal(t, "# Body\n", body)
}

func TestSplitFrontMatter_CRLF(t *testing.T) {
	raw := "---\r\ntitle: Windows\r\n---\r\nBody text\r\n"

	fm, body := SplitFrontMatter(raw)

	require.NotNil(t, fm)
	assert.Equal(t, "Windows", fm["title"])
	assert.Equal(t, "Body text\n", body)
}

func TestFrontMatterString(t *testing.T) {
	fm := map[string]any{"title": "  Export  ", "count": 3}

	assert.Equal(t, "Export", frontMatterString(fm, "title"))
	assert.Equal(t, "", frontMatterString(fm, "count"))
	assert.Equal(t, "", frontMatterString(fm, "missing"))
	assert.Equal(t, "", frontMatterString(nil, "title"))
}

func TestFrontMatterTags_List(t *testing.T) {
	fm := map[string]any{"tags": []any{"Dialog", " Modal ", 7}}

	assert.Equal(t, []string{"dialog", "modal"}, frontMatterTags(fm))
}

func TestFrontMatterTags_CommaString(t *testing.T) {
	fm := map[string]any{"tags": "Export, Import , "}

	assert.Equal(t, []string{"export", "import"}, frontMatterTags(fm))
}

func TestFrontMatterTags_Absent(t *testing.T) {
	assert.Nil(t, frontMatterTags(nil))
	assert.Nil(t, frontMatterTags(map[string]any{"title": "x"}))
}
