package openai

import (
	"errors"

	"github.com/sashabaranov/go-openai"

	"voice-enhancer/internal/app/api"
)

// ProviderName identifies OpenAI in provider errors and metrics.
const ProviderName = "openai"

// NewClient builds a client for the OpenAI API or any compatible endpoint.
// An empty baseURL keeps the library default.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}

// NewProviderError wraps a failed OpenAI call for stage, keeping the API's
// own message when the response carried one.
func NewProviderError(stage string, err error) *api.ProviderError {
	return &api.ProviderError{
		Provider: ProviderName,
		Stage:    stage,
		Message:  errorMessage(err),
		Err:      err,
	}
}

func errorMessage(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
