package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-enhancer/internal/app/api"
	openaiclient "voice-enhancer/internal/app/api/openai"
	"voice-enhancer/internal/app/api/prompt"
)

// chatStub emulates /v1/chat/completions and records the last request.
type chatStub struct {
	last    openai.ChatCompletionRequest
	choices []openai.ChatCompletionChoice
	status  int
}

func (s *chatStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/v1/chat/completions" {
		http.NotFound(w, r)
		return
	}
	body, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(body, &s.last)

	w.Header().Set("Content-Type", "application/json")
	if s.status != 0 {
		w.WriteHeader(s.status)
		io.WriteString(w, `{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`)
		return
	}
	json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
		ID:      "chatcmpl-test",
		Object:  "chat.completion",
		Model:   s.last.Model,
		Choices: s.choices,
	})
}

func newStubbedEnhancer(t *testing.T, stub *chatStub) *Enhancer {
	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)
	return NewEnhancer(openaiclient.NewClient("sk-test", server.URL+"/v1"), "")
}

func assistant(content string) []openai.ChatCompletionChoice {
	return []openai.ChatCompletionChoice{{
		Index:   0,
		Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
	}}
}

func TestEnhancer_ImageAgentPrompt(t *testing.T) {
	stub := &chatStub{choices: assistant("A neon-lit cat perched on a rooftop, cinematic lighting")}
	enhancer := newStubbedEnhancer(t, stub)

	out, err := enhancer.Enhance(context.Background(), "a cat on a roof", "Creative", "MidJourney")
	require.NoError(t, err)

	assert.Equal(t, "A neon-lit cat perched on a rooftop, cinematic lighting", out)
	assert.Equal(t, openai.GPT4o, stub.last.Model)
	require.Len(t, stub.last.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, stub.last.Messages[0].Role)
	assert.Equal(t, prompt.SystemInstruction, stub.last.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, stub.last.Messages[1].Role)
	assert.Contains(t, stub.last.Messages[1].Content, "descriptive image generation prompt suitable for MidJourney in a Creative style")
	assert.NotContains(t, stub.last.Messages[1].Content, "Rewrite and enhance")
	assert.Contains(t, stub.last.Messages[1].Content, "\n\nOriginal Text: a cat on a roof")
}

func TestEnhancer_GenericAgentPrompt(t *testing.T) {
	stub := &chatStub{choices: assistant("Please summarise the quarterly report.")}
	enhancer := newStubbedEnhancer(t, stub)

	_, err := enhancer.Enhance(context.Background(), "summarise the report", "Professional", "ChatGPT")
	require.NoError(t, err)

	user := stub.last.Messages[1].Content
	assert.Contains(t, user, "Rewrite and enhance the following text in a Professional tone, optimized as a prompt or input for ChatGPT.")
	assert.NotContains(t, user, "image generation prompt")
}

func TestEnhancer_NoChoices(t *testing.T) {
	enhancer := newStubbedEnhancer(t, &chatStub{})

	out, err := enhancer.Enhance(context.Background(), "text", "Technical", "Claude")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestEnhancer_ProviderError(t *testing.T) {
	enhancer := newStubbedEnhancer(t, &chatStub{status: http.StatusTooManyRequests})

	_, err := enhancer.Enhance(context.Background(), "text", "Technical", "Claude")
	require.Error(t, err)
	assert.Equal(t, "You exceeded your current quota", api.UpstreamMessage(err))
}
