package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	apperrors "voice-enhancer/internal/app/errors"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	original_text TEXT NOT NULL,
	enhanced_text TEXT NOT NULL,
	persona       TEXT NOT NULL,
	agent         TEXT NOT NULL,
	created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// GetConnection opens the SQLite database at dsn, creating the parent
// directory of plain file paths when needed.
func GetConnection(dsn string) (*sql.DB, error) {
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrDatabaseConnection.Error())
		}
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseConnection.Error())
	}
	// sqlite serialises writers; a single connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)
	return db, nil
}

// InitDB declares the transcriptions table.
func InitDB(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return apperrors.Wrap(err, apperrors.ErrSchemaFailed.Error())
	}
	return nil
}
