// Package keywords extracts normalised keyword sets from course text
// and search queries.
package keywords

import (
	"regexp"
	"strings"
)

// nonWordRuns matches runs of characters outside [0-9A-Za-z_].
var nonWordRuns = regexp.MustCompile(`\W+`)

// minTokenLength drops short tokens; only tokens strictly longer than
// this survive extraction.
const minTokenLength = 3

// defaultStopWords are common function words excluded from keyword
// sets: articles, conjunctions, auxiliary verbs and prepositions.
var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "should",
	"could", "may", "might", "must", "can", "this", "that", "these", "those",
	"it", "its", "as", "by", "from", "up", "about", "into", "through",
	"during", "before", "after", "above", "below", "between", "under",
}

// Extractor produces deduplicated, stop-word filtered keyword lists.
// The same extractor is applied to chunk text at index time and to the
// raw query string at search time, so both sides tokenise identically.
type Extractor struct {
	stopWords map[string]struct{}
}

// Option configures the extractor.
type Option func(*Extractor)

// WithStopWords replaces the default stop-word set.
func WithStopWords(words []string) Option {
	return func(e *Extractor) {
		e.stopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			e.stopWords[w] = struct{}{}
		}
	}
}

// New creates a keyword extractor with the given options.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	WithStopWords(defaultStopWords)(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract lowercases the text, splits it on non-word-character runs,
// drops tokens of length <= 3 and stop words, and deduplicates
// preserving first occurrence.
func (e *Extractor) Extract(text string) []string {
	tokens := nonWordRuns.Split(strings.ToLower(text), -1)

	seen := make(map[string]struct{}, len(tokens))
	var out []string
	for _, token := range tokens {
		if len(token) <= minTokenLength {
			continue
		}
		if _, stop := e.stopWords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
