// Package document provides an immutable view of one fetched page: its source
// URL, the parsed DOM, the visible body text, and any embedded JSON-LD blocks.
// A Document is owned by the extraction call that created it and is never
// retained by the pipeline.
package document

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document wraps one fetched page for selector-style lookups.
type Document struct {
	// URL is the source URL the page was fetched from.
	URL string

	doc      *goquery.Document
	rawHTML  string
	bodyText string
	base     *url.URL
}

// New parses raw HTML into a Document. The visible body text is extracted
// eagerly so repeated keyword probes are cheap.
func New(sourceURL, rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	base, _ := url.Parse(sourceURL)

	return &Document{
		URL:      sourceURL,
		doc:      doc,
		rawHTML:  rawHTML,
		bodyText: extractBodyText(doc),
		base:     base,
	}, nil
}

// Find returns the nodes matching a CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// HTML returns the raw, unparsed page content. Used by the regex-based
// contact extractors that scan markup rather than rendered text.
func (d *Document) HTML() string {
	return d.rawHTML
}

// BodyText returns the lowercased visible body text with whitespace collapsed
// to single spaces. Script and style content is excluded.
func (d *Document) BodyText() string {
	return d.bodyText
}

// Title returns the trimmed page title, or "" when absent.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// JSONLD returns the contents of every JSON-LD script block on the page.
// Blocks are returned verbatim; callers must expect malformed JSON.
func (d *Document) JSONLD() []string {
	var blocks []string
	d.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

// AbsoluteURL resolves href against the document's source URL. Unresolvable
// input is returned unchanged.
func (d *Document) AbsoluteURL(href string) string {
	if d.base == nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return d.base.ResolveReference(ref).String()
}

// extractBodyText walks the body's text nodes, joining them with spaces so
// keyword probes don't see words from adjacent elements glued together.
func extractBodyText(doc *goquery.Document) string {
	var sb strings.Builder
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	for _, node := range body.Nodes {
		appendTextNodes(node, &sb)
	}
	return strings.ToLower(strings.Join(strings.Fields(sb.String()), " "))
}

func appendTextNodes(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendTextNodes(c, sb)
	}
}
