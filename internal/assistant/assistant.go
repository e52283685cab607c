// Package assistant runs the back-office chat helper on top of a
// pluggable chat model provider.
package assistant

import (
	"context"
	"fmt"

	"traiteur/internal/assistant/providers"
)

// systemPrompt keeps the assistant on catering business topics.
const systemPrompt = `You are the virtual assistant of a catering back office.
You help the staff with menu planning, dish suggestions, portion and
quantity estimates, event organization, inventory questions, and order
handling. Answer concisely and practically. If a question is unrelated
to the catering business, politely steer the conversation back to it.`

// Service answers chat conversations for the back office.
type Service struct {
	provider providers.Provider
}

// NewService creates an assistant service backed by the given provider.
func NewService(p providers.Provider) *Service {
	return &Service{provider: p}
}

// Configured reports whether a provider is available. The rest of the
// application keeps working without one; only chat endpoints refuse.
func (s *Service) Configured() bool {
	return s != nil && s.provider != nil
}

// Chat streams the assistant's reply for a conversation. The system
// prompt is prepended; callers pass only user and assistant turns.
// Each content chunk is delivered through onChunk as it arrives.
func (s *Service) Chat(ctx context.Context, messages []providers.Message, onChunk func(string) error) error {
	if !s.Configured() {
		return fmt.Errorf("no chat provider configured")
	}

	full := make([]providers.Message, 0, len(messages)+1)
	full = append(full, providers.Message{Role: "system", Content: systemPrompt})
	full = append(full, messages...)

	return s.provider.StreamComplete(ctx, full, onChunk)
}

// Complete returns the assistant's full reply without streaming.
func (s *Service) Complete(ctx context.Context, messages []providers.Message) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("no chat provider configured")
	}

	full := make([]providers.Message, 0, len(messages)+1)
	full = append(full, providers.Message{Role: "system", Content: systemPrompt})
	full = append(full, messages...)

	return s.provider.Complete(ctx, full)
}
