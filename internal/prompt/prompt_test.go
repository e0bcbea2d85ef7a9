package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTML(t *testing.T) {
	html := `<html><body>
<p>Hello   there,
  student.</p>
<h2>Rules</h2>
<ul><li>Be kind</li><li> Cite   the syllabus </li></ul>
<p>   </p>
</body></html>`

	text, err := FromHTML([]byte(html))
	require.NoError(t, err)

	assert.Equal(t, "Hello there, student.\n\nRules:\n- Be kind\n- Cite the syllabus", text)
}

func TestDefault(t *testing.T) {
	text := Default()

	assert.True(t, strings.HasPrefix(text, "You are the Stanford CS 106B Tree"))
	assert.Contains(t, text, "debugging and conceptual help on problem sets")
	assert.Contains(t, text, "- Recursion and backtracking")
	assert.NotContains(t, text, "<li>")
	assert.Equal(t, text, Default())
}
