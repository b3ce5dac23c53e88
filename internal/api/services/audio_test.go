package services

import (
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"voice-enhancer/internal/api/dto"
	"voice-enhancer/internal/api/errors"
	"voice-enhancer/internal/app/api"
	"voice-enhancer/internal/app/converter"
	"voice-enhancer/internal/app/testutil"
)

func fileHeader(t *testing.T, audio *testutil.AudioPart) *multipart.FileHeader {
	t.Helper()
	req := testutil.NewProcessAudioRequest(t, "/api/process-audio", audio, "", "")
	require.NoError(t, req.ParseMultipartForm(32<<20))
	headers := req.MultipartForm.File[dto.FormFieldAudio]
	require.Len(t, headers, 1)
	return headers[0]
}

type audioFixture struct {
	transcriber *testutil.MockTranscriber
	enhancer    *testutil.MockEnhancer
	uploadDir   string
	service     AudioService
}

func newAudioFixture(t *testing.T, maxUploadBytes int64) *audioFixture {
	f := &audioFixture{
		transcriber: testutil.NewMockTranscriber(),
		enhancer:    testutil.NewMockEnhancer(),
		uploadDir:   t.TempDir(),
	}
	pipeline := converter.NewConverter(f.transcriber, f.enhancer, f.uploadDir, nil)
	f.service = NewAudioService(pipeline, maxUploadBytes, nil)
	return f
}

func (f *audioFixture) assertNoProviderCalls(t *testing.T) {
	f.transcriber.AssertNotCalled(t, "Transcript", mock.Anything, mock.Anything)
	f.enhancer.AssertNotCalled(t, "Enhance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (f *audioFixture) assertUploadsRemoved(t *testing.T) {
	entries, err := os.ReadDir(f.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func webm(t *testing.T) *multipart.FileHeader {
	return fileHeader(t, &testutil.AudioPart{FileName: "recording.webm", ContentType: "audio/webm", Data: []byte("webm-bytes")})
}

func TestProcessAudio_Success(t *testing.T) {
	f := newAudioFixture(t, 25<<20)
	f.transcriber.On("Transcript", mock.Anything, mock.MatchedBy(func(p string) bool {
		return filepath.Ext(p) == ".webm"
	})).Return("draw a cat", nil)
	f.enhancer.On("Enhance", mock.Anything, "draw a cat", "Creative", "Midjourney").Return("A cat, oil painting", nil)

	resp, err := f.service.ProcessAudio(context.Background(), &dto.ProcessAudioRequest{
		Audio: webm(t), Persona: "Creative", Agent: "Midjourney",
	})

	require.NoError(t, err)
	assert.Equal(t, "draw a cat", resp.OriginalText)
	assert.Equal(t, "A cat, oil painting", resp.EnhancedText)
	f.assertUploadsRemoved(t)
}

func TestProcessAudio_ClientErrors(t *testing.T) {
	tests := []struct {
		name          string
		req           func(t *testing.T) *dto.ProcessAudioRequest
		expectMessage string
	}{
		{
			name: "missing_audio",
			req: func(t *testing.T) *dto.ProcessAudioRequest {
				return &dto.ProcessAudioRequest{Persona: "Professional", Agent: "ChatGPT"}
			},
			expectMessage: errors.MsgNoAudio,
		},
		{
			name: "missing_audio_checked_before_labels",
			req: func(t *testing.T) *dto.ProcessAudioRequest {
				return &dto.ProcessAudioRequest{}
			},
			expectMessage: errors.MsgNoAudio,
		},
		{
			name: "missing_persona",
			req: func(t *testing.T) *dto.ProcessAudioRequest {
				return &dto.ProcessAudioRequest{Audio: webm(t), Agent: "ChatGPT"}
			},
			expectMessage: errors.MsgLabelsRequired,
		},
		{
			name: "missing_agent",
			req: func(t *testing.T) *dto.ProcessAudioRequest {
				return &dto.ProcessAudioRequest{Audio: webm(t), Persona: "Professional"}
			},
			expectMessage: errors.MsgLabelsRequired,
		},
		{
			name: "too_large",
			req: func(t *testing.T) *dto.ProcessAudioRequest {
				big := fileHeader(t, &testutil.AudioPart{FileName: "long.mp3", ContentType: "audio/mpeg", Data: make([]byte, 2<<20)})
				return &dto.ProcessAudioRequest{Audio: big, Persona: "Professional", Agent: "ChatGPT"}
			},
			expectMessage: "Audio file exceeds the 1MB limit",
		},
		{
			name: "unsupported_type",
			req: func(t *testing.T) *dto.ProcessAudioRequest {
				doc := fileHeader(t, &testutil.AudioPart{FileName: "notes.pdf", ContentType: "application/pdf", Data: []byte("%PDF")})
				return &dto.ProcessAudioRequest{Audio: doc, Persona: "Professional", Agent: "ChatGPT"}
			},
			expectMessage: errors.MsgUnsupportedAudio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAudioFixture(t, 1<<20)

			_, err := f.service.ProcessAudio(context.Background(), tt.req(t))

			apiErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
			assert.Equal(t, tt.expectMessage, apiErr.Message)
			f.assertNoProviderCalls(t)
		})
	}
}

func TestProcessAudio_ProviderFailures(t *testing.T) {
	tests := []struct {
		name           string
		transcribeErr  error
		enhanceErr     error
		expectMessage  string
		expectEnhancer bool
	}{
		{
			name:          "transcription_failure_passes_upstream_message",
			transcribeErr: &api.ProviderError{Provider: "openai", Stage: api.StageTranscription, Message: "Audio file is too short"},
			expectMessage: "Audio file is too short",
		},
		{
			name:           "enhancement_failure_passes_upstream_message",
			enhanceErr:     &api.ProviderError{Provider: "openai", Stage: api.StageEnhancement, Message: "Rate limit reached"},
			expectMessage:  "Rate limit reached",
			expectEnhancer: true,
		},
		{
			name:          "failure_without_message_is_generic",
			transcribeErr: &api.ProviderError{Provider: "openai", Stage: api.StageTranscription, Err: context.DeadlineExceeded},
			expectMessage: errors.MsgProcessingFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAudioFixture(t, 25<<20)
			transcript := ""
			if tt.transcribeErr == nil {
				transcript = "hello"
			}
			f.transcriber.On("Transcript", mock.Anything, mock.Anything).Return(transcript, tt.transcribeErr)
			if tt.expectEnhancer {
				f.enhancer.On("Enhance", mock.Anything, "hello", "Professional", "ChatGPT").Return("", tt.enhanceErr)
			}

			_, err := f.service.ProcessAudio(context.Background(), &dto.ProcessAudioRequest{
				Audio: webm(t), Persona: "Professional", Agent: "ChatGPT",
			})

			apiErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatus())
			assert.Equal(t, tt.expectMessage, apiErr.Message)
			if !tt.expectEnhancer {
				f.enhancer.AssertNotCalled(t, "Enhance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
			f.assertUploadsRemoved(t)
		})
	}
}

func TestAcceptedAudioType(t *testing.T) {
	accepted := []string{"", "audio/webm", "audio/webm;codecs=opus", "video/webm", "audio/mpeg", "application/octet-stream"}
	for _, ct := range accepted {
		assert.True(t, AcceptedAudioType(ct), ct)
	}
	rejected := []string{"application/pdf", "text/plain", "image/png", "not a type;;"}
	for _, ct := range rejected {
		assert.False(t, AcceptedAudioType(ct), ct)
	}
}

func TestProcessAudio_SizeLimit(t *testing.T) {
	tests := []struct {
		name          string
		limit         int64
		size          int
		expectMessage string
	}{
		{"sub_megabyte_limit", 1000, 2000, "Audio file exceeds the 1000 bytes limit"},
		{"kilobyte_limit", 512 << 10, 600 << 10, "Audio file exceeds the 512KB limit"},
		{"fractional_megabyte_limit", 3 << 19, 2 << 20, "Audio file exceeds the 1.5MB limit"},
		{"zero_limit_uses_default", 0, 26 << 20, "Audio file exceeds the 25MB limit"},
		{"negative_limit_uses_default", -1, 26 << 20, "Audio file exceeds the 25MB limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAudioFixture(t, tt.limit)
			big := fileHeader(t, &testutil.AudioPart{FileName: "long.mp3", ContentType: "audio/mpeg", Data: make([]byte, tt.size)})

			_, err := f.service.ProcessAudio(context.Background(), &dto.ProcessAudioRequest{
				Audio: big, Persona: "Professional", Agent: "ChatGPT",
			})

			apiErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
			assert.Equal(t, tt.expectMessage, apiErr.Message)
			f.assertNoProviderCalls(t)
		})
	}
}

func TestUploadTooLargeMessage(t *testing.T) {
	assert.Equal(t, "Audio file exceeds the 25MB limit", UploadTooLargeMessage(25<<20))
	assert.Equal(t, "Audio file exceeds the 1KB limit", UploadTooLargeMessage(1024))
	assert.Equal(t, "Audio file exceeds the 1 bytes limit", UploadTooLargeMessage(1))
}
