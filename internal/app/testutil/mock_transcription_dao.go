package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"voice-enhancer/internal/app/model"
)

// MockTranscriptionDAO is a testify mock of repository.TranscriptionDAO.
type MockTranscriptionDAO struct {
	mock.Mock
}

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{}
}

func (m *MockTranscriptionDAO) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTranscriptionDAO) Append(ctx context.Context, in model.NewTranscription) (model.Transcription, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Transcription), args.Error(1)
}

func (m *MockTranscriptionDAO) List(ctx context.Context) ([]model.Transcription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transcription), args.Error(1)
}
