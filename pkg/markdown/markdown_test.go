package markdown_test

import (
	"testing"

	"portfolio-site/pkg/markdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeadingsListsAndEmphasis(t *testing.T) {
	r := markdown.NewRenderer()
	out, err := r.Render("# Title\n\nSome **bold** and *italic* text.\n\n- one\n- two\n")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `<h1 id="title">Title</h1>`)
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.Contains(t, html, "<em>italic</em>")
	assert.Contains(t, html, "<li>one</li>")
}

func TestRenderStripsScripts(t *testing.T) {
	r := markdown.NewRenderer()
	out, err := r.Render("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script")
}
