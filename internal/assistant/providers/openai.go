package providers

import (
	"context"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIProvider implements the Provider interface over the OpenAI API.
type OpenAIProvider struct {
	client      *openai.LLM
	model       string
	temperature float32
	maxTokens   int32
}

// NewOpenAIProvider creates an OpenAI provider. The API key comes from
// the OPENAI_API_KEY environment variable.
func NewOpenAIProvider(model string) (*OpenAIProvider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIProvider{
		client:      client,
		model:       model,
		temperature: 0.7,
		maxTokens:   2000,
	}, nil
}

func (p *OpenAIProvider) toContent(messages []Message) []llms.MessageContent {
	content := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		var msgType llms.ChatMessageType
		switch msg.Role {
		case "system":
			msgType = llms.ChatMessageTypeSystem
		case "assistant":
			msgType = llms.ChatMessageTypeAI
		default:
			msgType = llms.ChatMessageTypeHuman
		}
		content[i] = llms.TextParts(msgType, msg.Content)
	}
	return content
}

// Complete implements the Provider interface
func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	response, err := p.client.GenerateContent(ctx, p.toContent(messages),
		llms.WithModel(p.model),
		llms.WithTemperature(float64(p.temperature)),
		llms.WithMaxTokens(int(p.maxTokens)),
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI completion failed: %w", err)
	}

	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	return response.Choices[0].Content, nil
}

// StreamComplete implements streaming for OpenAI
func (p *OpenAIProvider) StreamComplete(ctx context.Context, messages []Message, onChunk func(string) error) error {
	_, err := p.client.GenerateContent(ctx, p.toContent(messages),
		llms.WithModel(p.model),
		llms.WithTemperature(float64(p.temperature)),
		llms.WithMaxTokens(int(p.maxTokens)),
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			return onChunk(string(chunk))
		}),
	)
	if err != nil {
		return fmt.Errorf("OpenAI streaming failed: %w", err)
	}
	return nil
}

// SetTemperature sets the temperature for completions
func (p *OpenAIProvider) SetTemperature(temp float32) {
	p.temperature = temp
}

// SetMaxTokens sets the max tokens for completions
func (p *OpenAIProvider) SetMaxTokens(tokens int32) {
	p.maxTokens = tokens
}
