package pg

import (
	"context"
	"database/sql"

	apperrors "voice-enhancer/internal/app/errors"
	"voice-enhancer/internal/app/model"
)

type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB connects to postgres and declares the schema.
func NewPostgresDB(ctx context.Context, connectionString string) (*PostgresDB, error) {
	db, err := GetConnection(ctx, connectionString)
	if err != nil {
		return nil, err
	}
	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresDB{db: db}, nil
}

// NewPostgresDBFromConn wraps an already opened pool. The schema is assumed
// to exist.
func NewPostgresDBFromConn(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) Append(ctx context.Context, in model.NewTranscription) (model.Transcription, error) {
	insertSQL := `
		INSERT INTO transcriptions (original_text, enhanced_text, persona, agent)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	t := model.Transcription{
		OriginalText: in.OriginalText,
		EnhancedText: in.EnhancedText,
		Persona:      in.Persona,
		Agent:        in.Agent,
	}
	row := pdb.db.QueryRowContext(ctx, insertSQL, in.OriginalText, in.EnhancedText, in.Persona, in.Agent)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return model.Transcription{}, apperrors.Wrap(err, apperrors.ErrInsertFailed.Error())
	}
	return t, nil
}

func (pdb *PostgresDB) List(ctx context.Context) ([]model.Transcription, error) {
	query := `
		SELECT id, original_text, enhanced_text, persona, agent, created_at
		FROM transcriptions
		ORDER BY created_at DESC, id DESC`

	rows, err := pdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrQueryFailed.Error())
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		var createdAt sql.NullTime
		err = rows.Scan(&t.ID, &t.OriginalText, &t.EnhancedText, &t.Persona, &t.Agent, &createdAt)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrScanFailed.Error())
		}
		t.CreatedAt = createdAt.Time
		transcriptions = append(transcriptions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrQueryFailed.Error())
	}

	return transcriptions, nil
}
