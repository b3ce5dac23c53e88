package repository

import (
	"context"

	"voice-enhancer/internal/app/model"
)

// TranscriptionDAO is the persistence port for transcription history.
// Implementations assign ID and CreatedAt themselves and never overwrite
// an existing record.
type TranscriptionDAO interface {
	Close() error

	// Append stores a new record and returns it with generated fields set.
	Append(ctx context.Context, in model.NewTranscription) (model.Transcription, error)

	// List returns every record, newest first. Records created at the same
	// instant are ordered by insertion, latest insert first.
	List(ctx context.Context) ([]model.Transcription, error)
}
