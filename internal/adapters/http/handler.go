package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/decks"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/app"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/domain"
)

type Handler struct {
	svc *app.ReadingService
}

func NewHandler(svc *app.ReadingService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/draw", h.DrawCards)
	e.GET("/v1/reading", h.ReadDeep)
	e.POST("/v1/reading/unlock", h.UnlockReward)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// DrawCards serves the deterministic spread without touching the LLM.
func (h *Handler) DrawCards(c echo.Context) error {
	q, n, deckID, ok := parseDrawParams(c)
	if !ok {
		return nil
	}

	resp, err := h.svc.DrawCards(c.Request().Context(), app.DrawRequest{
		Question: q,
		NumCards: n,
		DeckID:   deckID,
	})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)
	return c.JSON(http.StatusOK, DrawResponse{
		Deck:      resp.DeckID,
		Cards:     toCardResponses(resp.Cards),
		Signature: resp.Signature,
		Meta:      MetaResp{RequestID: requestID},
	})
}

// ReadDeep runs the full pipeline: draw, narrate, format, cache.
func (h *Handler) ReadDeep(c echo.Context) error {
	q, n, deckID, ok := parseDrawParams(c)
	if !ok {
		return nil
	}
	locale := c.QueryParam("locale")

	resp, err := h.svc.Read(c.Request().Context(), app.ReadingRequest{
		Question: q,
		NumCards: n,
		DeckID:   deckID,
		Locale:   locale,
	})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)
	return c.JSON(http.StatusOK, ReadingResponse{
		Deck:      resp.DeckID,
		Locale:    resp.Locale,
		Cards:     toCardResponses(resp.Cards),
		Signature: resp.Signature,
		Narrative: NarrativeResp{
			Text:       resp.Narrative,
			Style:      resp.Style,
			Disclaimer: resp.Disclaimer,
			FromCache:  resp.FromCache,
		},
		Meta: MetaResp{
			Model:     resp.Model,
			RequestID: requestID,
			LatencyMS: resp.LatencyMS,
		},
	})
}

// UnlockReward marks the reward gate for a reading as passed.
func (h *Handler) UnlockReward(c echo.Context) error {
	var req UnlockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	if req.Signature == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "signature is required"})
	}

	h.svc.UnlockReward(c.Request().Context(), req.Question, req.Signature)
	return c.NoContent(http.StatusNoContent)
}

func parseDrawParams(c echo.Context) (q string, n int, deckID string, ok bool) {
	q = c.QueryParam("q")
	if len(q) > 500 {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q must be at most 500 characters"})
		return "", 0, "", false
	}

	n = 3
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 10 {
			_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "n must be an integer between 1 and 10"})
			return "", 0, "", false
		}
		n = parsed
	}

	deckID = c.QueryParam("deck")
	if deckID == "" {
		deckID = decks.DefaultDeckID
	}
	return q, n, deckID, true
}

func toCardResponses(cards []domain.DrawnCard) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, dc := range cards {
		out[i] = CardResponse{
			ID:            dc.ID,
			Name:          dc.Name,
			Arcana:        dc.Arcana,
			Suit:          dc.Suit,
			Position:      dc.Position,
			PositionLabel: dc.PositionLabel,
			Orientation:   dc.Orientation,
			Keywords:      dc.Keywords,
			Meaning:       dc.Meaning(dc.Orientation),
		}
	}
	return out
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrDeckNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNoNarrative),
		errors.Is(err, domain.ErrUpstreamLLM),
		errors.Is(err, domain.ErrInvalidLLMJSON):
		slog.Error("narrative unavailable", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "narrative temporarily unavailable", Retryable: true})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
