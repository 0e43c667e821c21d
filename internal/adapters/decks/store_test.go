package decks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/decks"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/domain"
)

func TestEmbeddedStore_FullCatalog(t *testing.T) {
	store := decks.NewEmbeddedStore()

	deck, err := store.GetDeck(context.Background(), decks.DefaultDeckID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(deck.Cards) != domain.DeckSize {
		t.Fatalf("expected %d cards, got %d", domain.DeckSize, len(deck.Cards))
	}

	major := 0
	suits := map[domain.Suit]int{}
	seen := map[string]bool{}
	for _, c := range deck.Cards {
		if seen[c.ID] {
			t.Errorf("duplicate card ID %q", c.ID)
		}
		seen[c.ID] = true
		if c.Arcana == domain.ArcanaMajor {
			major++
		} else {
			suits[c.Suit]++
		}
		if c.Upright == "" || c.Reversed == "" {
			t.Errorf("card %q missing meaning text", c.ID)
		}
	}
	if major != domain.MajorCount {
		t.Errorf("expected %d major arcana, got %d", domain.MajorCount, major)
	}
	for _, suit := range []domain.Suit{domain.SuitWands, domain.SuitCups, domain.SuitSwords, domain.SuitPentacles} {
		if suits[suit] != domain.CardsPerSuit {
			t.Errorf("suit %s: expected %d cards, got %d", suit, domain.CardsPerSuit, suits[suit])
		}
	}
}

func TestEmbeddedStore_WellKnownCards(t *testing.T) {
	store := decks.NewEmbeddedStore()
	deck, err := store.GetDeck(context.Background(), decks.DefaultDeckID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := map[string]domain.Card{}
	for _, c := range deck.Cards {
		byID[c.ID] = c
	}

	fool, ok := byID["0-fool"]
	if !ok {
		t.Fatal("missing 0-fool")
	}
	if fool.Name != "The Fool" || fool.Rank != 0 || fool.Arcana != domain.ArcanaMajor {
		t.Errorf("unexpected fool card: %+v", fool)
	}

	ace, ok := byID["cups-ace"]
	if !ok {
		t.Fatal("missing cups-ace")
	}
	if ace.Suit != domain.SuitCups || ace.Rank != 1 {
		t.Errorf("unexpected ace of cups: %+v", ace)
	}
}

func TestEmbeddedStore_UnknownDeck(t *testing.T) {
	store := decks.NewEmbeddedStore()
	_, err := store.GetDeck(context.Background(), "nonexistent")
	if !errors.Is(err, domain.ErrDeckNotFound) {
		t.Errorf("expected ErrDeckNotFound, got %v", err)
	}
}
