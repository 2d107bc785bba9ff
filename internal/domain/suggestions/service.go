package suggestions

import (
	"math/rand/v2"

	"github.com/clinidoc/clinidoc/internal/domain/records"
)

// Item is one actionable recommendation.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Category groups recommendations under a theme such as Lifestyle or
// Nutrition.
type Category struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Advice is the full recommendation payload for the current session.
type Advice struct {
	Patient     string     `json:"patient"`
	Suggestions []Category `json:"suggestions"`
	Insights    []string   `json:"insights"`
	FromNote    bool       `json:"fromNote"`
}

// NoteSource exposes the session state the advisor reads.
type NoteSource interface {
	Note() *records.SOAPNote
	CurrentPatientName() string
}

// Service produces health suggestions for the current session. It never
// fails: without a complete structured note it falls back to one of two
// static advice sets.
type Service struct {
	source   NoteSource
	coinFlip func() bool
}

// NewService wires the advisor over the session state.
func NewService(source NoteSource) *Service {
	return &Service{
		source:   source,
		coinFlip: func() bool { return rand.IntN(2) == 0 },
	}
}

// Advise returns recommendations for the current session. A complete note
// yields the note-derived advice set; a missing or partial note picks one
// of the two fallback sets at random for variety.
func (s *Service) Advise() Advice {
	advice := Advice{Patient: s.source.CurrentPatientName()}

	note := s.source.Note()
	if note.IsComplete() {
		advice.Suggestions = primarySuggestions
		advice.Insights = primaryInsights
		advice.FromNote = true
		return advice
	}

	if s.coinFlip() {
		advice.Suggestions = primarySuggestions
		advice.Insights = primaryInsights
	} else {
		advice.Suggestions = alternativeSuggestions
		advice.Insights = alternativeInsights
	}
	return advice
}
