package testutil

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a testify mock of api.Transcriber. Every call records
// whether the staged file was present at call time.
type MockTranscriber struct {
	mock.Mock

	SawFiles []string
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	if _, err := os.Stat(inputFilePath); err == nil {
		m.SawFiles = append(m.SawFiles, inputFilePath)
	}
	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}

// MockEnhancer is a testify mock of api.Enhancer.
type MockEnhancer struct {
	mock.Mock
}

func NewMockEnhancer() *MockEnhancer {
	return &MockEnhancer{}
}

func (m *MockEnhancer) Enhance(ctx context.Context, text, persona, agent string) (string, error) {
	args := m.Called(ctx, text, persona, agent)
	return args.String(0), args.Error(1)
}
