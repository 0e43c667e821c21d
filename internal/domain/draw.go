package domain

import "fmt"

// threeCardLabels names the spread positions in order. Draws longer than
// the named list fall back to a generic label.
var threeCardLabels = []string{"Past", "Present", "Future"}

// Draw produces a reproducible spread for the question: the question text
// is hashed to a seed, the deck is shuffled with that seed, and the first
// count cards are taken in order. Orientation comes from a second
// generator built from the same seed, so changing the number of positions
// never changes which cards are chosen. A count larger than the deck is
// clamped; a count below one yields an empty spread.
func Draw(deck Deck, question string, count int) []DrawnCard {
	if count < 1 {
		return nil
	}
	if count > len(deck.Cards) {
		count = len(deck.Cards)
	}

	seed := HashQuestion(question)
	shuffled := SeededShuffle(deck.Cards, seed)
	orientations := NewSeededRNG(seed)

	cards := make([]DrawnCard, count)
	for i := 0; i < count; i++ {
		orientation := Upright
		if orientations.NextBool() {
			orientation = Reversed
		}
		cards[i] = DrawnCard{
			Card:          shuffled[i],
			Position:      i + 1,
			PositionLabel: PositionLabel(i),
			Orientation:   orientation,
		}
	}
	return cards
}

// PositionLabel returns the label for the 0-based position index.
func PositionLabel(i int) string {
	if i < len(threeCardLabels) {
		return threeCardLabels[i]
	}
	return fmt.Sprintf("Position %d", i+1)
}
