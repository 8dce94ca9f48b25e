// Package coursehtml parses course-guide HTML into titled sections and
// code blocks ready for chunking.
package coursehtml

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// MinCodeLength is the smallest trimmed code block worth indexing.
// Shorter snippets are inline fragments with no retrieval value.
const MinCodeLength = 10

// Section is one titled prose section of a course document.
type Section struct {
	// ID is the section's anchor attribute, possibly empty.
	ID string

	// Title is the normalised section heading.
	Title string

	// Text is the normalised section body.
	Text string
}

// Document is the parsed form of one course HTML document.
type Document struct {
	// ID is the content identifier the document was fetched under.
	ID string

	// Title is the document title from the <title> tag, falling back
	// to a cleaned-up form of the identifier.
	Title string

	// Sections are the titled sections in document order.
	Sections []Section

	// CodeBlocks are the <pre><code> example bodies in document
	// order, trimmed but otherwise verbatim.
	CodeBlocks []string
}

// Normaliser parses course HTML documents.
type Normaliser struct{}

// New creates a new course HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Pre-compiled expressions for text normalisation.
var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	strayChars     = regexp.MustCompile(`[^\w\s.,!?()-]`)
)

// Normalise parses raw HTML into sections and code blocks. Returns a
// domain.ErrParseFailed wrapper when the markup cannot be parsed.
func (n *Normaliser) Normalise(id string, raw []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrParseFailed, id, err)
	}

	doc := &Document{
		ID:    id,
		Title: documentTitle(root, id),
	}

	walk(root, func(node *html.Node) {
		switch {
		case hasClass(node, "section"):
			if section, ok := parseSection(node); ok {
				doc.Sections = append(doc.Sections, section)
			}

		case isCodeBlock(node):
			code := strings.TrimSpace(textContent(node))
			if len(code) > MinCodeLength {
				doc.CodeBlocks = append(doc.CodeBlocks, code)
			}
		}
	})

	return doc, nil
}

// CleanText normalises text for indexing: whitespace runs collapse to
// a single space, characters outside letters, digits and basic
// punctuation are stripped, and the result is trimmed.
func CleanText(text string) string {
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = strayChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// parseSection extracts a titled section from a .section element.
// Sections missing a title or content element are skipped.
func parseSection(node *html.Node) (Section, bool) {
	titleEl := findByClass(node, "section-title")
	contentEl := findByClass(node, "section-content")
	if titleEl == nil || contentEl == nil {
		return Section{}, false
	}

	return Section{
		ID:    attr(node, "id"),
		Title: CleanText(textContent(titleEl)),
		Text:  CleanText(textContent(contentEl)),
	}, true
}

// documentTitle returns the <title> text, or a readable fallback
// derived from the content identifier.
func documentTitle(root *html.Node, id string) string {
	var title string
	walk(root, func(node *html.Node) {
		if title == "" && node.Type == html.ElementNode && node.Data == "title" {
			title = strings.TrimSpace(textContent(node))
		}
	})
	if title != "" {
		return title
	}

	// Fall back to the identifier with separators opened up.
	fallback := strings.NewReplacer("_", " ", "-", " ").Replace(id)
	return strings.TrimSpace(fallback)
}

// isCodeBlock reports whether node is a <code> element directly inside
// a <pre> element.
func isCodeBlock(node *html.Node) bool {
	if node.Type != html.ElementNode || node.Data != "code" {
		return false
	}
	parent := node.Parent
	return parent != nil && parent.Type == html.ElementNode && parent.Data == "pre"
}

// walk visits every node in the tree in document order.
func walk(node *html.Node, visit func(*html.Node)) {
	visit(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

// findByClass returns the first descendant carrying the class token.
func findByClass(node *html.Node, class string) *html.Node {
	var found *html.Node
	walk(node, func(n *html.Node) {
		if found == nil && n != node && hasClass(n, class) {
			found = n
		}
	})
	return found
}

// hasClass reports whether the node's class attribute contains the
// given token.
func hasClass(node *html.Node, class string) bool {
	if node.Type != html.ElementNode {
		return false
	}
	for _, token := range strings.Fields(attr(node, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

// attr returns the value of the named attribute, or empty string.
func attr(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates all text nodes beneath the node.
func textContent(node *html.Node) string {
	var sb strings.Builder
	walk(node, func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return sb.String()
}
