package domain

import "errors"

var (
	ErrDeckNotFound   = errors.New("deck not found")
	ErrInvalidDeck    = errors.New("deck violates catalog invariants")
	ErrUpstreamLLM    = errors.New("upstream LLM failure")
	ErrInvalidLLMJSON = errors.New("LLM returned invalid JSON after retry")
	ErrNoNarrative    = errors.New("no narrative available")
)
