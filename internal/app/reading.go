package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/deepread"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/domain"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/ports"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/session"
)

// DrawRequest is the application-level input for a bare draw (no HTTP
// types, no LLM involvement).
type DrawRequest struct {
	Question string
	NumCards int
	DeckID   string
}

// DrawResponse carries the deterministic spread and its signature.
type DrawResponse struct {
	DeckID    string
	Cards     []domain.DrawnCard
	Signature string
}

// ReadingRequest asks for the full pipeline: draw, narrative, format.
type ReadingRequest struct {
	Question string
	NumCards int
	DeckID   string
	Locale   string
}

// ReadingResponse is the application-level output of a deep reading.
type ReadingResponse struct {
	DeckID     string
	Locale     string
	Cards      []domain.DrawnCard
	Signature  string
	Narrative  string
	Style      string
	Disclaimer string
	Model      string
	FromCache  bool
	LatencyMS  int64
}

// ReadingService orchestrates deterministic draws, LLM narration, length
// formatting and session caching.
type ReadingService struct {
	deckStore     ports.DeckStore
	narrator      ports.Narrator
	cache         *session.Cache
	logger        *slog.Logger
	model         string
	defaultLocale string
}

func NewReadingService(ds ports.DeckStore, narrator ports.Narrator, cache *session.Cache, logger *slog.Logger, model, defaultLocale string) *ReadingService {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	return &ReadingService{
		deckStore:     ds,
		narrator:      narrator,
		cache:         cache,
		logger:        logger,
		model:         model,
		defaultLocale: defaultLocale,
	}
}

// DrawCards produces the reproducible spread for a question. The same
// question and count always yield the same cards, orientations and
// labels.
func (s *ReadingService) DrawCards(ctx context.Context, req DrawRequest) (DrawResponse, error) {
	deck, err := s.deckStore.GetDeck(ctx, req.DeckID)
	if err != nil {
		return DrawResponse{}, fmt.Errorf("get deck: %w", err)
	}

	cards := domain.Draw(deck, req.Question, req.NumCards)
	return DrawResponse{
		DeckID:    req.DeckID,
		Cards:     cards,
		Signature: domain.Signature(cards),
	}, nil
}

// Read runs the full pipeline. If the narrator fails, a previously
// cached narrative for the same reading is served instead; only when
// neither is available does the error surface.
func (s *ReadingService) Read(ctx context.Context, req ReadingRequest) (ReadingResponse, error) {
	locale := req.Locale
	if locale == "" {
		locale = s.defaultLocale
	}

	draw, err := s.DrawCards(ctx, DrawRequest{Question: req.Question, NumCards: req.NumCards, DeckID: req.DeckID})
	if err != nil {
		return ReadingResponse{}, err
	}

	resp := ReadingResponse{
		DeckID:    draw.DeckID,
		Locale:    locale,
		Cards:     draw.Cards,
		Signature: draw.Signature,
	}

	start := time.Now()
	out, err := s.narrator.Narrate(ctx, narrativeInput(req.Question, locale, draw))
	resp.LatencyMS = time.Since(start).Milliseconds()

	if err != nil {
		cached := s.cache.Load(ctx, session.Key(req.Question, draw.Signature))
		if cached != nil && cached.DeepAnalysis != "" {
			s.logger.WarnContext(ctx, "narrator failed, serving cached narrative",
				"signature", draw.Signature, "error", err)
			resp.Narrative = cached.DeepAnalysis
			resp.FromCache = true
			return resp, nil
		}
		return ReadingResponse{}, fmt.Errorf("narrate: %w: %w", domain.ErrNoNarrative, err)
	}

	resp.Narrative = deepread.Format(locale, out.Text)
	resp.Style = out.Style
	resp.Disclaimer = out.Disclaimer
	resp.Model = narrativeModel(out.Model, s.model)

	s.cache.StoreDeepAnalysis(ctx, req.Question, draw.Signature, resp.Narrative)

	return resp, nil
}

// UnlockReward records that the reward gate for a reading was passed.
func (s *ReadingService) UnlockReward(ctx context.Context, question, signature string) {
	s.cache.MarkRewardUnlocked(ctx, question, signature)
}

func narrativeInput(question, locale string, draw DrawResponse) ports.NarrativeInput {
	cards := make([]ports.CardInput, len(draw.Cards))
	for i, c := range draw.Cards {
		cards[i] = ports.CardInput{
			Name:          c.Name,
			Position:      c.Position,
			PositionLabel: c.PositionLabel,
			Orientation:   string(c.Orientation),
			Keywords:      c.Keywords,
			Meaning:       c.Meaning(c.Orientation),
		}
	}
	spread := "generic"
	if len(draw.Cards) == 3 {
		spread = "three_card"
	}
	return ports.NarrativeInput{
		DeckID:   draw.DeckID,
		Spread:   spread,
		Locale:   locale,
		Question: question,
		Cards:    cards,
	}
}

func narrativeModel(fromLLM, fallback string) string {
	if fromLLM != "" {
		return fromLLM
	}
	return fallback
}
