package api

import (
	"context"
	"errors"
	"fmt"
)

// Transcriber converts a staged audio file to text.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}

// Enhancer rewrites transcribed text in a persona's tone for a target agent.
type Enhancer interface {
	Enhance(ctx context.Context, text, persona, agent string) (string, error)
}

// Pipeline stages a provider can fail in.
const (
	StageTranscription = "transcription"
	StageEnhancement   = "enhancement"
)

// ProviderError is returned by the provider adapters when the upstream call
// fails. Message holds the upstream explanation when one was given.
type ProviderError struct {
	Provider string
	Stage    string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s failed: %s", e.Provider, e.Stage, e.Message)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Stage, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// UpstreamMessage returns the provider's own message carried by err, or ""
// when err is not a ProviderError or the provider gave no message.
func UpstreamMessage(err error) string {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Message
	}
	return ""
}
