package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	html, err := ToHTML("## The Willpower Myth\n\n1. **Income Smoothing**: regular payments")
	require.NoError(t, err)

	assert.Contains(t, html, `<h2 id="the-willpower-myth">The Willpower Myth</h2>`)
	assert.Contains(t, html, "<strong>Income Smoothing</strong>")
	assert.Contains(t, html, "<ol>")
}

func TestToHTML_EscapesRawHTML(t *testing.T) {
	html, err := ToHTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
