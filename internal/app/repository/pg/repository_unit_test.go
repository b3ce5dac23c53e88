package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "voice-enhancer/internal/app/errors"
	"voice-enhancer/internal/app/model"
	"voice-enhancer/internal/app/repository"
)

const (
	insertPattern = `INSERT INTO transcriptions (original_text, enhanced_text, persona, agent)`
	selectPattern = `SELECT id, original_text, enhanced_text, persona, agent, created_at`
)

// TestPostgresDAO_Interface verifies PostgresDB implements TranscriptionDAO interface
func TestPostgresDAO_Interface(t *testing.T) {
	var _ repository.TranscriptionDAO = (*PostgresDB)(nil)
}

func newMockDB(t *testing.T) (*PostgresDB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresDBFromConn(db), mock
}

func TestInitSchema_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS transcriptions")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, InitSchema(context.Background(), db))

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS transcriptions")).
		WillReturnError(errors.New("permission denied"))
	err = InitSchema(context.Background(), db)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSchemaFailed))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_Close_Unit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	postgresDB := NewPostgresDBFromConn(db)
	mock.ExpectClose()

	assert.NoError(t, postgresDB.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_Append_Unit(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	input := model.NewTranscription{
		OriginalText: "turn on the lights",
		EnhancedText: "Please switch on the lights.",
		Persona:      "Professional",
		Agent:        "ChatGPT",
	}

	tests := []struct {
		name        string
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name: "database assigns id and timestamp",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(insertPattern)).
					WithArgs(input.OriginalText, input.EnhancedText, input.Persona, input.Agent).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, createdAt))
			},
		},
		{
			name: "insert failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(insertPattern)).
					WillReturnError(errors.New("connection reset"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postgresDB, mock := newMockDB(t)
			tt.mockSetup(mock)

			got, err := postgresDB.Append(context.Background(), input)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrInsertFailed))
				assert.Contains(t, err.Error(), "connection reset")
			} else {
				require.NoError(t, err)
				assert.Equal(t, 42, got.ID)
				assert.Equal(t, createdAt, got.CreatedAt)
				assert.Equal(t, input.OriginalText, got.OriginalText)
				assert.Equal(t, input.EnhancedText, got.EnhancedText)
				assert.Equal(t, input.Persona, got.Persona)
				assert.Equal(t, input.Agent, got.Agent)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresDB_List_Unit(t *testing.T) {
	newer := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "original_text", "enhanced_text", "persona", "agent", "created_at"}

	t.Run("rows come back in query order", func(t *testing.T) {
		postgresDB, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectPattern) + `.*ORDER BY created_at DESC, id DESC`).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(2, "b", "B", "Creative", "Midjourney", newer).
				AddRow(1, "a", "A", "Professional", "ChatGPT", older))

		got, err := postgresDB.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, "Midjourney", got[0].Agent)
		assert.Equal(t, newer, got[0].CreatedAt)
		assert.Equal(t, 1, got[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		postgresDB, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectPattern)).
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := postgresDB.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		postgresDB, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectPattern)).
			WillReturnError(errors.New("relation does not exist"))

		_, err := postgresDB.List(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrQueryFailed))
	})

	t.Run("scan error", func(t *testing.T) {
		postgresDB, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectPattern)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow("not-an-int", "a", "A", "p", "g", older))

		_, err := postgresDB.List(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrScanFailed))
	})

	t.Run("row iteration error", func(t *testing.T) {
		postgresDB, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectPattern)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "a", "A", "p", "g", older).
				RowError(0, errors.New("network blip")))

		_, err := postgresDB.List(context.Background())
		require.Error(t, err)
	})
}
