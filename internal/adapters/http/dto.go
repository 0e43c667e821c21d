package http

import "github.com/Wei-YuChen/Tarot-predition-sub000/internal/domain"

// DrawResponse is the JSON shape returned by GET /v1/draw.
type DrawResponse struct {
	Deck      string         `json:"deck"`
	Cards     []CardResponse `json:"cards"`
	Signature string         `json:"signature"`
	Meta      MetaResp       `json:"meta"`
}

// ReadingResponse is the JSON shape returned by GET /v1/reading.
type ReadingResponse struct {
	Deck      string         `json:"deck"`
	Locale    string         `json:"locale"`
	Cards     []CardResponse `json:"cards"`
	Signature string         `json:"signature"`
	Narrative NarrativeResp  `json:"narrative"`
	Meta      MetaResp       `json:"meta"`
}

type CardResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Arcana        domain.Arcana      `json:"arcana"`
	Suit          domain.Suit        `json:"suit,omitempty"`
	Position      int                `json:"position"`
	PositionLabel string             `json:"position_label"`
	Orientation   domain.Orientation `json:"orientation"`
	Keywords      []string           `json:"keywords"`
	Meaning       string             `json:"meaning"`
}

type NarrativeResp struct {
	Text       string `json:"text"`
	Style      string `json:"style,omitempty"`
	Disclaimer string `json:"disclaimer,omitempty"`
	FromCache  bool   `json:"from_cache"`
}

type MetaResp struct {
	Model     string `json:"model,omitempty"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
}

// UnlockRequest is the JSON body for POST /v1/reading/unlock.
type UnlockRequest struct {
	Question  string `json:"question"`
	Signature string `json:"signature"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}
