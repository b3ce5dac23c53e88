package sqlite

import (
	"context"
	"database/sql"

	apperrors "voice-enhancer/internal/app/errors"
	"voice-enhancer/internal/app/model"
)

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens the database at dsn and declares the schema.
func NewSQLiteDB(ctx context.Context, dsn string) (*SQLiteDB, error) {
	db, err := GetConnection(dsn)
	if err != nil {
		return nil, err
	}
	if err := InitDB(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Append(ctx context.Context, in model.NewTranscription) (model.Transcription, error) {
	insertSQL := `INSERT INTO transcriptions (original_text, enhanced_text, persona, agent) VALUES (?, ?, ?, ?);`
	res, err := sdb.db.ExecContext(ctx, insertSQL, in.OriginalText, in.EnhancedText, in.Persona, in.Agent)
	if err != nil {
		return model.Transcription{}, apperrors.Wrap(err, apperrors.ErrInsertFailed.Error())
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Transcription{}, apperrors.Wrap(err, apperrors.ErrInsertFailed.Error())
	}

	row := sdb.db.QueryRowContext(ctx,
		`SELECT id, original_text, enhanced_text, persona, agent, created_at FROM transcriptions WHERE id = ?`, id)
	return scanTranscription(row)
}

func (sdb *SQLiteDB) List(ctx context.Context) ([]model.Transcription, error) {
	sqlStr := `
		SELECT id, original_text, enhanced_text, persona, agent, created_at
		FROM transcriptions
		ORDER BY created_at DESC, id DESC;`
	rows, err := sdb.db.QueryContext(ctx, sqlStr)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrQueryFailed.Error())
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		t, err := scanTranscription(rows)
		if err != nil {
			return nil, err
		}
		transcriptions = append(transcriptions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrQueryFailed.Error())
	}
	return transcriptions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTranscription(s scanner) (model.Transcription, error) {
	var t model.Transcription
	var createdAt sql.NullTime
	if err := s.Scan(&t.ID, &t.OriginalText, &t.EnhancedText, &t.Persona, &t.Agent, &createdAt); err != nil {
		return model.Transcription{}, apperrors.Wrap(err, apperrors.ErrScanFailed.Error())
	}
	t.CreatedAt = createdAt.Time
	return t, nil
}
