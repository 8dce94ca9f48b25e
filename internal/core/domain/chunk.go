package domain

// ChunkKind identifies the structural origin of a content chunk.
type ChunkKind string

const (
	// ChunkKindSection is a chunk cut from a titled prose section.
	ChunkKindSection ChunkKind = "section"

	// ChunkKindCode is a chunk holding one complete code example.
	ChunkKindCode ChunkKind = "code"
)

// MaxChunkSize is the default upper bound on chunk text length in
// characters. Roughly 500 tokens, sized for the model context window.
const MaxChunkSize = 2000

// ContentChunk is one retrievable unit of course material.
type ContentChunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// SourceID is the identifier of the owning course document.
	SourceID string

	// SourceTitle is the human-readable title of the owning document.
	SourceTitle string

	// SectionID is the anchor within the document.
	// Empty for code chunks not tied to a section.
	SectionID string

	// SectionTitle is the heading text of the owning section, if any.
	SectionTitle string

	// Kind is the chunk variant (section or code).
	Kind ChunkKind

	// Text is the normalised chunk body, at most MaxChunkSize characters.
	Text string

	// Keywords is the deduplicated keyword set derived from the text
	// and section title, in first-occurrence order.
	Keywords []string

	// Citation is the precomputed human-readable citation label,
	// "<SourceTitle>, Section: <SectionTitle>" for sections or
	// "<SourceTitle>, Code Example" for code.
	Citation string

	// Locator resolves to the chunk's place in the course content,
	// "<sourceId>#<sectionId>" for sections or "<sourceId>" for code.
	Locator string
}

// HasKeyword reports whether the chunk's keyword set contains the
// exact token.
func (c *ContentChunk) HasKeyword(token string) bool {
	for _, k := range c.Keywords {
		if k == token {
			return true
		}
	}
	return false
}

// IndexStats summarises the state of the content index.
type IndexStats struct {
	// TotalChunks is the number of chunks in the index.
	TotalChunks int

	// Sources is the number of distinct course documents indexed.
	Sources int

	// Sections is the number of section chunks.
	Sections int

	// CodeBlocks is the number of code chunks.
	CodeBlocks int

	// Ready reports whether the index has completed a build.
	Ready bool
}
