package utils

import (
	"context"
	"fmt"
	"strings"
)

// AIAvailability mirrors the three-state readiness of a completion
// backend: usable now, usable after a caller-consented download, or not
// usable at all.
type AIAvailability int

const (
	AIAvailable AIAvailability = iota
	AIDownloadable
	AINotAvailable
)

// AISession is a single-conversation handle. A session is created for
// exactly one selection call and destroyed before the call returns,
// on every exit path. Sessions are never shared between callers.
type AISession interface {
	// Prompt sends one user turn and returns the full response text.
	// Honors ctx cancellation; the session must still be destroyed
	// after a canceled call.
	Prompt(ctx context.Context, prompt string) (string, error)
	Destroy() error
}

// AISessionFactory creates call-scoped sessions configured with a
// system instruction. ConsentFunc runs before the first session when
// the backend reports AIDownloadable; it is caller-mediated and may
// reject the download.
type AISessionFactory interface {
	Availability(ctx context.Context) AIAvailability
	NewSession(ctx context.Context, systemInstruction string) (AISession, error)
}

type ConsentFunc func(ctx context.Context) error

// NewAISessionFactory selects the completion backend by provider name,
// mirroring the embedding-client factory switch.
func NewAISessionFactory(provider, apiKey, model string) (AISessionFactory, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAISessionFactory(apiKey, model), nil
	case "gemini":
		return NewGeminiSessionFactory(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", provider)
	}
}
