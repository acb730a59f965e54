package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

func TestSupportedFeatures(t *testing.T) {
	s := NewSearcher(nil)

	features := s.SupportedFeatures()

	require.NotEmpty(t, features)
	assert.Contains(t, features, "dialog")
	assert.Contains(t, features, "drag-and-drop")
	assert.Contains(t, features, "export")
	// Sorted for stable output.
	assert.IsIncreasing(t, features)
}

func TestSampleSnippet_UnknownFeature(t *testing.T) {
	s := NewSearcher(nil)

	_, err := s.SampleSnippet(context.Background(), "teleport")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownFeature)
}

func TestSampleSnippet_FetchesAndExtracts(t *testing.T) {
	sample := `import addOnUISdk from "sdk";

addOnUISdk.ready.then(() => {
  const button = document.getElementById("dialog");
  button.addEventListener("click", async () => {
    const result = await addOnUISdk.app.showModalDialog(options);
    console.log(result);
  });
});
`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/repos/AdobeDocs/express-add-on-samples/contents/") {
			http.NotFound(w, r)
			return
		}
		resp := map[string]any{
			"type":     "file",
			"encoding": "base64",
			"name":     "index.js",
			"content":  base64.StdEncoding.EncodeToString([]byte(sample)),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	defer srv.Close()

	client, err := NewClientWithHTTPClient(srv.Client(), srv.URL)
	require.NoError(t, err)
	s := NewSearcher(client)

	snippet, err := s.SampleSnippet(context.Background(), "dialog")

	require.NoError(t, err)
	assert.Contains(t, snippet, "showModalDialog")
	// Lead-in context lines are captured before the matching line.
	assert.Contains(t, snippet, "addEventListener")
}

func TestExtractSnippet_KeywordWithIndicator(t *testing.T) {
	content := strings.Join([]string{
		"const a = 1;",
		"function showDialog() {",
		"  open();",
		"}",
		"const later = 2;",
	}, "\n")

	snippet := extractSnippet(content, []string{"dialog"})

	assert.Contains(t, snippet, "function showDialog() {")
	assert.Contains(t, snippet, "}")
	assert.NotContains(t, snippet, "const later")
}

func TestExtractSnippet_KeywordWithoutIndicatorSkipped(t *testing.T) {
	content := strings.Join([]string{
		"// dialog docs only",
		"const x = openDialog();",
	}, "\n")

	snippet := extractSnippet(content, []string{"dialog"})

	// The comment line has no function/assignment indicator; the
	// assignment line is the anchor and its lead-in includes line one.
	assert.Contains(t, snippet, "const x = openDialog();")
}

func TestExtractSnippet_FallbackHead(t *testing.T) {
	var lines []string
	for i := 0; i < 80; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}

	snippet := extractSnippet(strings.Join(lines, "\n"), []string{"absent"})

	assert.Contains(t, snippet, "line 0")
	assert.Contains(t, snippet, "line 39")
	assert.NotContains(t, snippet, "line 40")
}

func TestExtractSnippet_BoundedBody(t *testing.T) {
	lines := []string{"function dialog() {"}
	for i := 0; i < 100; i++ {
		lines = append(lines, "  work();")
	}
	lines = append(lines, "}")

	snippet := extractSnippet(strings.Join(lines, "\n"), []string{"dialog"})

	got := strings.Count(snippet, "\n") + 1
	assert.LessOrEqual(t, got, snippetLeadLines+snippetMaxBodyLines)
}

func TestClosingBrace_Nested(t *testing.T) {
	lines := []string{
		"function outer() {",
		"  if (x) {",
		"    inner();",
		"  }",
		"}",
		"after();",
	}

	assert.Equal(t, 5, closingBrace(lines, 0))
}
