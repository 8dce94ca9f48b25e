package domain

// DefaultTopK is the number of results returned when the caller does
// not specify a limit.
const DefaultTopK = 5

// ScoredChunk is a content chunk paired with its relevance score for
// one query.
type ScoredChunk struct {
	// Chunk is the matched content chunk.
	Chunk ContentChunk

	// Score is the final relevance score after boosts.
	Score float64
}

// ScoringConfig holds the relevance weights applied per query keyword
// and the per-kind multiplicative boosts. The values are empirical
// constants; changing them changes ranking behaviour.
type ScoringConfig struct {
	// KeywordMatch is added for an exact token match in the chunk's
	// keyword set.
	KeywordMatch float64

	// ContentMatch is added when the chunk text contains the keyword
	// as a substring.
	ContentMatch float64

	// SectionTitleMatch is added when the section title contains the
	// keyword as a substring. Strongest per-keyword signal.
	SectionTitleMatch float64

	// SourceTitleMatch is added when the source document title
	// contains the keyword as a substring.
	SourceTitleMatch float64

	// CodeBoost multiplies the score of code chunks when the query
	// uses implementation-related terms.
	CodeBoost float64

	// SectionBoost multiplies the score of section chunks.
	SectionBoost float64
}

// DefaultScoringConfig returns the reference scoring weights.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		KeywordMatch:      3,
		ContentMatch:      2,
		SectionTitleMatch: 5,
		SourceTitleMatch:  4,
		CodeBoost:         1.5,
		SectionBoost:      1.2,
	}
}
