// Package providers abstracts the chat model backends the assistant
// can run on.
package providers

import "context"

// Message represents one turn of a chat conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider interface for chat model backends
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	StreamComplete(ctx context.Context, messages []Message, onChunk func(string) error) error
	SetTemperature(temp float32)
	SetMaxTokens(tokens int32)
}
