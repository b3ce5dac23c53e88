// Package gemini provides an Enhancer backed by Google's Gemini models.
package gemini

import (
	"context"

	"google.golang.org/genai"

	"voice-enhancer/internal/app/api"
	"voice-enhancer/internal/app/api/prompt"
)

// ProviderName identifies Gemini in provider errors and metrics.
const ProviderName = "gemini"

const defaultModel = "gemini-2.0-flash"

// Config holds the settings for the Gemini enhancer.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Enhancer rewrites text with a single GenerateContent call.
type Enhancer struct {
	client *genai.Client
	model  string
}

// NewEnhancer creates a Gemini API client.
func NewEnhancer(ctx context.Context, cfg Config) (*Enhancer, error) {
	if cfg.APIKey == "" {
		return nil, &api.ProviderError{Provider: ProviderName, Stage: api.StageEnhancement, Message: "GEMINI_API_KEY is not set"}
	}
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Enhancer{client: client, model: model}, nil
}

// Enhance sends the same instructions the OpenAI enhancer uses, with the
// role set through the system instruction.
func (e *Enhancer) Enhance(ctx context.Context, text, persona, agent string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.SystemInstruction, genai.RoleUser),
	}
	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt.UserMessage(text, persona, agent)), config)
	if err != nil {
		return "", &api.ProviderError{Provider: ProviderName, Stage: api.StageEnhancement, Message: err.Error(), Err: err}
	}
	return resp.Text(), nil
}
