package localfile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	apperrors "voice-enhancer/internal/app/errors"
	"voice-enhancer/internal/app/model"
)

// Store keeps every transcription as one JSON array in a single file. It is
// the no-database fallback and assumes a single writer: Append reads the
// whole file, derives the next id from the current maximum and rewrites
// the file, so two concurrent Appends can race.
type Store struct {
	path string
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a store backed by path. The file does not need to exist.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) Append(ctx context.Context, in model.NewTranscription) (model.Transcription, error) {
	records, err := s.load()
	if err != nil {
		return model.Transcription{}, err
	}

	nextID := 1
	for _, r := range records {
		if r.ID >= nextID {
			nextID = r.ID + 1
		}
	}

	t := model.Transcription{
		ID:           nextID,
		OriginalText: in.OriginalText,
		EnhancedText: in.EnhancedText,
		Persona:      in.Persona,
		Agent:        in.Agent,
		CreatedAt:    s.now(),
	}
	records = append(records, t)

	if err := s.save(records); err != nil {
		return model.Transcription{}, err
	}
	return t, nil
}

func (s *Store) List(ctx context.Context) ([]model.Transcription, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	// reverse file order first so the stable sort keeps later inserts ahead
	// of earlier ones that share a timestamp
	out := make([]model.Transcription, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) load() ([]model.Transcription, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Transcription{}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.ErrFileReadFailed.Error())
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Transcription{}, nil
	}

	var records []model.Transcription
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCorruptStore.Error())
	}
	if records == nil {
		records = []model.Transcription{}
	}
	return records, nil
}

func (s *Store) save(records []model.Transcription) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileWriteFailed.Error())
	}
	return nil
}
