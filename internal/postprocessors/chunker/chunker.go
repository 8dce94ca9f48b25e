// Package chunker splits normalised course text into bounded chunks on
// paragraph and sentence boundaries.
package chunker

import (
	"regexp"
	"strings"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// paragraphBreaks matches blank-line paragraph boundaries.
var paragraphBreaks = regexp.MustCompile(`\n\n+`)

// Processor splits text into chunks no longer than the configured
// maximum. Splitting is greedy: paragraphs accumulate into the running
// chunk until the next one would overflow it, then the chunk is
// flushed. A paragraph that alone exceeds the maximum is further split
// on sentence boundaries with the same rule.
type Processor struct {
	maxSize int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithMaxChunkSize sets the chunk size bound in characters.
func WithMaxChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.maxSize = size
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{maxSize: domain.MaxChunkSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxChunkSize returns the configured chunk size bound.
func (p *Processor) MaxChunkSize() int {
	return p.maxSize
}

// Split chunks the text. Text within the bound is returned whole;
// anything longer is split greedily on paragraph boundaries, then on
// sentence boundaries. Empty pieces are discarded.
func (p *Processor) Split(text string) []string {
	if len(text) <= p.maxSize {
		return []string{text}
	}

	var chunks []string
	current := ""

	for _, para := range paragraphBreaks.Split(text, -1) {
		if len(current)+len(para) > p.maxSize {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			if len(para) > p.maxSize {
				chunks = append(chunks, p.splitSentences(para)...)
				current = ""
			} else {
				current = para
			}
		} else {
			current += "\n\n" + para
		}
	}

	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return discardEmpty(chunks)
}

// splitSentences splits an oversized paragraph on ". " boundaries with
// the same greedy accumulate-and-flush rule.
func (p *Processor) splitSentences(para string) []string {
	var chunks []string
	current := ""

	for _, sentence := range strings.Split(para, ". ") {
		if len(current)+len(sentence) > p.maxSize {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			current = sentence + ". "
		} else {
			current += sentence + ". "
		}
	}

	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}

func discardEmpty(chunks []string) []string {
	out := chunks[:0]
	for _, c := range chunks {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
