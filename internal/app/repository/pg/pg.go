package pg

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	apperrors "voice-enhancer/internal/app/errors"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id            SERIAL PRIMARY KEY,
	original_text TEXT NOT NULL,
	enhanced_text TEXT NOT NULL,
	persona       TEXT NOT NULL,
	agent         TEXT NOT NULL,
	created_at    TIMESTAMP DEFAULT NOW()
)`

// GetConnection opens and pings a postgres connection pool.
func GetConnection(ctx context.Context, connectionString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseConnection.Error())
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseConnection.Error())
	}
	return db, nil
}

// InitSchema declares the transcriptions table if it does not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return apperrors.Wrap(err, apperrors.ErrSchemaFailed.Error())
	}
	return nil
}
