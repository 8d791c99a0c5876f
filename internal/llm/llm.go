// Package llm wraps the external text-generation provider behind a
// single-prompt completion interface.
package llm

import (
	"context"
	"errors"
)

// Client produces free-form text for a prompt. No streaming, no multi-turn state.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrUnavailable is returned for transport-level or provider-side failures.
	ErrUnavailable = errors.New("text-generation service unavailable")
	// ErrEmptyResponse is returned when the provider answers with no choices.
	ErrEmptyResponse = errors.New("text-generation service returned no content")
)
