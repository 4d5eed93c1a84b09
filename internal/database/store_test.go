package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardbook/internal/apperrors"
	"wardbook/internal/testutil"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db, testutil.NewTestLogger(t)), mock
}

func TestStore_Read(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Row
		expectErr bool
	}{
		{
			name: "rows mapped by column",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"fachname", "dosierung"}).
					AddRow("Ibuprofen", []byte("400 mg")).
					AddRow("Metformin", nil)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT fachname, dosierung FROM medizin")).
					WillReturnRows(rows).
					RowsWillBeClosed()
			},
			want: []Row{
				{"fachname": "Ibuprofen", "dosierung": "400 mg"},
				{"fachname": "Metformin", "dosierung": nil},
			},
		},
		{
			name: "empty result is an empty slice",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT fachname, dosierung FROM medizin")).
					WillReturnRows(sqlmock.NewRows([]string{"fachname", "dosierung"}))
			},
			want: []Row{},
		},
		{
			name: "query failure is a data access error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT fachname, dosierung FROM medizin")).
					WillReturnError(assert.AnError)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			tt.setupMock(mock)

			rows, err := store.Read(context.Background(), "SELECT fachname, dosierung FROM medizin")
			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.KindDataAccess))
				assert.ErrorIs(t, err, assert.AnError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, rows)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_ReadOne(t *testing.T) {
	t.Run("first row only", func(t *testing.T) {
		store, mock := newMockStore(t)
		rows := sqlmock.NewRows([]string{"id", "username"}).
			AddRow(int64(1), "anna").
			AddRow(int64(2), "ben")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username FROM users WHERE username = $1")).
			WithArgs("anna").
			WillReturnRows(rows).
			RowsWillBeClosed()

		row, err := store.ReadOne(context.Background(), "SELECT id, username FROM users WHERE username = $1", "anna")
		require.NoError(t, err)
		assert.Equal(t, Row{"id": int64(1), "username": "anna"}, row)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match is nil without error", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE username = $1")).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		row, err := store.ReadOne(context.Background(), "SELECT id FROM users WHERE username = $1", "nobody")
		require.NoError(t, err)
		assert.Nil(t, row)
	})
}

func TestStore_Write(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO medizin (fachname, dosierung) VALUES ($1, $2)")).
			WithArgs("Aspirin", "100 mg").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Write(context.Background(), "INSERT INTO medizin (fachname, dosierung) VALUES ($1, $2)", "Aspirin", "100 mg")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec reports affected rows", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM medizin WHERE fachname = $1")).
			WithArgs("Aspirin").
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := store.Exec(context.Background(), "DELETE FROM medizin WHERE fachname = $1", "Aspirin")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("failure is a data access error", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec("INSERT INTO nimmt").WillReturnError(assert.AnError)

		err := store.Write(context.Background(), "INSERT INTO nimmt (patientennummer, fachname) VALUES ($1, $2)", 1, "x")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.KindDataAccess))
	})
}

func TestStore_WriteAll(t *testing.T) {
	stmts := []Statement{
		{Query: "DELETE FROM nimmt WHERE patientennummer = $1", Args: []any{1001}},
		{Query: "DELETE FROM patient WHERE patientennummer = $1", Args: []any{1001}},
	}

	t.Run("commits when every statement succeeds", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(stmts[0].Query)).WithArgs(1001).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta(stmts[1].Query)).WithArgs(1001).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := store.WriteAll(context.Background(), stmts...)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 1}, affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(stmts[0].Query)).WithArgs(1001).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta(stmts[1].Query)).WithArgs(1001).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		affected, err := store.WriteAll(context.Background(), stmts...)
		require.Error(t, err)
		assert.Nil(t, affected)
		assert.True(t, apperrors.Is(err, apperrors.KindDataAccess))
		assert.Contains(t, err.Error(), "statement 2/2 failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRow_Accessors(t *testing.T) {
	row := Row{"id": int64(7), "small": int32(3), "text": "12", "name": "Mila", "none": nil, "num": 4.0}

	n, ok := row.Int64("id")
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)

	n, ok = row.Int64("small")
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)

	n, ok = row.Int64("text")
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	_, ok = row.Int64("name")
	assert.False(t, ok)

	_, ok = row.Int64("none")
	assert.False(t, ok)

	s, ok := row.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Mila", s)

	s, ok = row.String("id")
	assert.True(t, ok)
	assert.Equal(t, "7", s)

	_, ok = row.String("none")
	assert.False(t, ok)

	_, ok = row.String("missing")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	midnight := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-10", normalize(midnight, true))
	assert.Equal(t, "2026-01-10T00:00:00Z", normalize(midnight, false))
	assert.Equal(t, "2026-01-10T08:30:00Z", normalize(time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC), false))
	assert.Equal(t, "abc", normalize([]byte("abc"), false))
	assert.Equal(t, int64(5), normalize(int64(5), false))
}

func TestStore_ReadFormatsTimesByColumnType(t *testing.T) {
	store, mock := newMockStore(t)
	midnight := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("anfangsdatum").OfType("DATE", time.Time{}),
		sqlmock.NewColumn("due").OfType("TIMESTAMP", time.Time{}),
	).AddRow(midnight, midnight)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT anfangsdatum, due FROM x")).WillReturnRows(rows)

	got, err := store.Read(context.Background(), "SELECT anfangsdatum, due FROM x")
	require.NoError(t, err)
	assert.Equal(t, []Row{{"anfangsdatum": "2026-02-01", "due": "2026-02-01T00:00:00Z"}}, got)
}

func TestStore_ReadClosesRowsOnIterationError(t *testing.T) {
	store, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"fachname"}).
		AddRow("Ibuprofen").
		RowError(0, assert.AnError)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT fachname FROM medizin")).
		WillReturnRows(rows).
		RowsWillBeClosed()

	got, err := store.Read(context.Background(), "SELECT fachname FROM medizin")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperrors.Is(err, apperrors.KindDataAccess))
	assert.NoError(t, mock.ExpectationsWereMet())
}
