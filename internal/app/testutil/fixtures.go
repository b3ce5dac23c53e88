package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"voice-enhancer/internal/app/model"
)

// TestTranscriptions provides sample records, newest first.
var TestTranscriptions = []model.Transcription{
	{
		ID:           3,
		OriginalText: "a lighthouse on a cliff during a storm",
		EnhancedText: "A towering lighthouse on a jagged cliff, storm clouds, crashing waves, dramatic rim light, 35mm",
		Persona:      "Creative",
		Agent:        "Midjourney",
		CreatedAt:    time.Date(2025, 1, 17, 9, 15, 0, 0, time.UTC),
	},
	{
		ID:           2,
		OriginalText: "explain how the cache invalidation works in our service",
		EnhancedText: "Explain, step by step, how cache invalidation is implemented in our service, including edge cases.",
		Persona:      "Technical",
		Agent:        "Claude",
		CreatedAt:    time.Date(2025, 1, 16, 14, 45, 0, 0, time.UTC),
	},
	{
		ID:           1,
		OriginalText: "write an email to the team about friday",
		EnhancedText: "Draft a concise, professional email informing the team about Friday's schedule change.",
		Persona:      "Professional",
		Agent:        "ChatGPT",
		CreatedAt:    time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
	},
}

// AudioPart describes the file part of a multipart fixture request.
type AudioPart struct {
	FileName    string
	ContentType string
	Data        []byte
}

// NewProcessAudioRequest builds a multipart POST to path. A nil audio part
// omits the file; empty field values are omitted too.
func NewProcessAudioRequest(t *testing.T, path string, audio *AudioPart, persona, agent string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if audio != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="audio"; filename="`+audio.FileName+`"`)
		if audio.ContentType != "" {
			header.Set("Content-Type", audio.ContentType)
		}
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("create audio part: %v", err)
		}
		if _, err := part.Write(audio.Data); err != nil {
			t.Fatalf("write audio part: %v", err)
		}
	}
	if persona != "" {
		_ = mw.WriteField("persona", persona)
	}
	if agent != "" {
		_ = mw.WriteField("agent", agent)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
