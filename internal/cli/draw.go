package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/decks"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/app"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/domain"
)

var (
	drawQuestion string
	drawCount    int
	drawDeck     string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Print the deterministic spread for a question",
	Long: `Draws cards offline, without the LLM. The same question always
produces the same cards, orientations and position labels.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		deckStore := decks.NewEmbeddedStore()
		deck, err := deckStore.GetDeck(cmd.Context(), drawDeck)
		if err != nil {
			return err
		}

		cards := domain.Draw(deck, drawQuestion, drawCount)
		out := app.DrawResponse{
			DeckID:    drawDeck,
			Cards:     cards,
			Signature: domain.Signature(cards),
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	drawCmd.Flags().StringVarP(&drawQuestion, "question", "q", "", "Question to seed the draw")
	drawCmd.Flags().IntVarP(&drawCount, "cards", "n", 3, "Number of cards to draw")
	drawCmd.Flags().StringVar(&drawDeck, "deck", decks.DefaultDeckID, "Deck ID")
}
