package domain

// Orientation represents the orientation of a drawn tarot card.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Arcana is the card category: 22 Major or 56 Minor cards.
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// Suit is the Minor Arcana suit. Major Arcana cards carry no suit.
type Suit string

const (
	SuitNone      Suit = ""
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// Card is an immutable catalog entry. Cards are defined once at load and
// never mutated.
type Card struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Arcana   Arcana   `json:"arcana"`
	Suit     Suit     `json:"suit,omitempty"`
	Rank     int      `json:"rank"`
	Keywords []string `json:"keywords"`
	Upright  string   `json:"upright"`
	Reversed string   `json:"reversed"`
}

// Meaning returns the meaning text matching the given orientation.
func (c Card) Meaning(o Orientation) string {
	if o == Reversed {
		return c.Reversed
	}
	return c.Upright
}

// DrawnCard is a card bound to a spread position and an orientation.
type DrawnCard struct {
	Card
	Position      int         `json:"position"`
	PositionLabel string      `json:"position_label"`
	Orientation   Orientation `json:"orientation"`
}

// Deck is an ordered collection of tarot cards.
type Deck struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Reading is a question bound to the cards it produced, plus the
// narrative generated for it. The card list is fixed once drawn.
type Reading struct {
	Question  string      `json:"question"`
	Locale    string      `json:"locale"`
	Cards     []DrawnCard `json:"cards"`
	Narrative string      `json:"narrative,omitempty"`
}
