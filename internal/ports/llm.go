package ports

import "context"

// NarrativeInput holds everything the LLM needs to write a deep reading.
type NarrativeInput struct {
	DeckID   string
	Spread   string
	Locale   string
	Question string
	Cards    []CardInput
}

// CardInput is a simplified card representation for the LLM prompt.
type CardInput struct {
	Name          string
	Position      int
	PositionLabel string
	Orientation   string
	Keywords      []string
	Meaning       string
}

// NarrativeOutput is the structured narrative returned by the LLM. Text
// is multi-paragraph and arbitrary length; the deep reading formatter
// reshapes it afterwards.
type NarrativeOutput struct {
	Text       string `json:"text"`
	Style      string `json:"style"`
	Disclaimer string `json:"disclaimer"`
	Model      string `json:"-"`
}

// Narrator generates a long-form tarot narrative via an LLM.
type Narrator interface {
	Narrate(ctx context.Context, in NarrativeInput) (NarrativeOutput, error)
}
