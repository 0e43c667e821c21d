package domain

import "fmt"

const (
	DeckSize     = 78
	MajorCount   = 22
	CardsPerSuit = 14
)

// ValidateDeck checks the fixed catalog invariants: 78 unique cards,
// 22 Major Arcana, and 14 cards in each of the four suits.
func ValidateDeck(deck Deck) error {
	if len(deck.Cards) != DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidDeck, len(deck.Cards), DeckSize)
	}

	seen := make(map[string]bool, len(deck.Cards))
	major := 0
	suits := make(map[Suit]int, 4)

	for _, c := range deck.Cards {
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate card ID %q", ErrInvalidDeck, c.ID)
		}
		seen[c.ID] = true

		switch c.Arcana {
		case ArcanaMajor:
			if c.Suit != SuitNone {
				return fmt.Errorf("%w: major arcana %q has suit %q", ErrInvalidDeck, c.ID, c.Suit)
			}
			major++
		case ArcanaMinor:
			suits[c.Suit]++
		default:
			return fmt.Errorf("%w: card %q has arcana %q", ErrInvalidDeck, c.ID, c.Arcana)
		}
	}

	if major != MajorCount {
		return fmt.Errorf("%w: %d major arcana, want %d", ErrInvalidDeck, major, MajorCount)
	}
	for _, suit := range []Suit{SuitWands, SuitCups, SuitSwords, SuitPentacles} {
		if suits[suit] != CardsPerSuit {
			return fmt.Errorf("%w: suit %q has %d cards, want %d", ErrInvalidDeck, suit, suits[suit], CardsPerSuit)
		}
	}
	return nil
}
