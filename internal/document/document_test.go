package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyText_LowercasedAndSeparated(t *testing.T) {
	doc, err := New("https://example.com", `<html><body>
		<h1>Grand Hall</h1><p>Copenhagen</p>
		<script>var hidden = "SCRIPT TEXT";</script>
	</body></html>`)
	require.NoError(t, err)

	text := doc.BodyText()
	// Words from adjacent elements stay separated.
	assert.Equal(t, "grand hall copenhagen", text)
	assert.NotContains(t, text, "script text")
}

func TestTitle(t *testing.T) {
	doc, err := New("https://example.com", "<html><head><title> Grand Hall </title></head><body></body></html>")
	require.NoError(t, err)

	assert.Equal(t, "Grand Hall", doc.Title())
}

func TestJSONLD(t *testing.T) {
	doc, err := New("https://example.com", `<html><head>
		<script type="application/ld+json">{"a": 1}</script>
		<script type="application/ld+json">{"b": 2}</script>
		<script>not structured data</script>
	</head><body></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, []string{`{"a": 1}`, `{"b": 2}`}, doc.JSONLD())
}

func TestAbsoluteURL(t *testing.T) {
	doc, err := New("https://example.com/venues/list", "<html><body></body></html>")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/venue/1", doc.AbsoluteURL("/venue/1"))
	assert.Equal(t, "https://example.com/venues/details", doc.AbsoluteURL("details"))
	assert.Equal(t, "https://other.com/x", doc.AbsoluteURL("https://other.com/x"))
}
