package domain

import "time"

// Citation is a human-readable source label plus a resolvable locator,
// attached to a generated answer.
type Citation struct {
	// Text is the citation label shown to the student.
	Text string `json:"text"`

	// URL is the locator resolving to the cited content.
	URL string `json:"url"`

	// SourceID identifies the cited course document.
	SourceID string `json:"moduleId"`
}

// Answer is the result of one tutoring question.
type Answer struct {
	// Text is the generated answer.
	Text string

	// Citations are the deduplicated sources the answer drew from.
	Citations []Citation
}

// ConversationTurn is one question/answer exchange in the tutoring
// session history.
type ConversationTurn struct {
	// ID is the unique identifier for the turn.
	ID string

	// Question is the student's question verbatim.
	Question string

	// Answer is the generated answer text.
	Answer string

	// Citations are the deduplicated citations returned with the answer.
	Citations []Citation

	// Timestamp is when the turn completed.
	Timestamp time.Time

	// ChunksUsed is the number of retrieved chunks the answer drew from.
	ChunksUsed int
}

// TutorStats summarises the tutoring session.
type TutorStats struct {
	// Ready reports whether the generative session is initialised.
	Ready bool

	// TotalQuestions is the number of recorded conversation turns.
	TotalQuestions int

	// AvgChunksUsed is the mean number of chunks per recorded turn.
	AvgChunksUsed float64

	// LastError is the most recent initialisation or generation error
	// message, empty when none occurred.
	LastError string
}
