package chat

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"voice-enhancer/internal/app/api"
	openaiclient "voice-enhancer/internal/app/api/openai"
	"voice-enhancer/internal/app/api/prompt"
)

// Enhancer rewrites text with a single chat completion.
type Enhancer struct {
	client *openai.Client
	model  string
}

// NewEnhancer creates an Enhancer. An empty model falls back to gpt-4o.
func NewEnhancer(client *openai.Client, model string) *Enhancer {
	if model == "" {
		model = openai.GPT4o
	}
	return &Enhancer{client: client, model: model}
}

// Enhance returns the first choice's content, or "" when the provider
// returned no choices.
func (e *Enhancer) Enhance(ctx context.Context, text, persona, agent string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt.SystemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt.UserMessage(text, persona, agent),
			},
		},
	}
	resp, err := e.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", openaiclient.NewProviderError(api.StageEnhancement, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
