package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardbook/internal/apperrors"
	"wardbook/internal/catalog"
	"wardbook/internal/config"
	"wardbook/internal/database"
	"wardbook/internal/services"
	"wardbook/internal/testutil"
)

func newMockStore(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return database.NewStore(db, testutil.NewTestLogger(t)), mock
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{cmd: NewMigrateCommand(), use: "migrate", flags: []string{"seed"}},
		{cmd: NewTablesCommand(), use: "tables", flags: []string{"format"}},
		{cmd: NewBrowseCommand(), use: "browse <table>", flags: []string{"limit", "column", "value", "format"}},
		{cmd: NewGraphCommand(), use: "graph"},
		{cmd: NewVersionCommand("dev"), use: "version"},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "wardctl 1.2.3\n", buf.String())
}

func TestTablesCommand(t *testing.T) {
	run := func(t *testing.T, accounts bool, args ...string) string {
		t.Helper()
		cmd := NewTablesCommand()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs(append([]string{}, args...))
		env := &Env{
			Config: &config.Config{BrowseMaxLimit: config.DefaultBrowseMaxLimit, BrowseAccountTables: accounts},
			Logger: testutil.NewTestLogger(t),
		}
		require.NoError(t, cmd.ExecuteContext(WithEnv(context.Background(), env)))
		return buf.String()
	}

	t.Run("table output", func(t *testing.T) {
		out := run(t, true)
		assert.Contains(t, out, "columns")
		assert.NotContains(t, out, "COLUMNS")
		assert.Contains(t, out, "patient")
		assert.Contains(t, out, "Ärzte")
		assert.Contains(t, out, "users")
		assert.NotContains(t, out, "password_hash")
	})

	t.Run("json without account tables", func(t *testing.T) {
		var tables []services.TableInfo
		require.NoError(t, json.Unmarshal([]byte(run(t, false, "--format", "json")), &tables))
		assert.Len(t, tables, len(catalog.Names(false)))
		for _, info := range tables {
			assert.NotEqual(t, "users", info.Name)
			assert.NotEqual(t, "todos", info.Name)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		cmd := NewTablesCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs([]string{"--format", "yaml"})
		env := &Env{Config: &config.Config{}, Logger: testutil.NewTestLogger(t)}
		err := cmd.ExecuteContext(WithEnv(context.Background(), env))
		assert.ErrorContains(t, err, "unknown format")
	})
}

func TestCommandsRequireEnv(t *testing.T) {
	cmd := NewBrowseCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"patient"})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorContains(t, err, "configuration not loaded")
}

func TestRunBrowse(t *testing.T) {
	def, ok := catalog.Lookup("arzt", false)
	require.True(t, ok)
	filter, ok := def.SelectFilter("spezialisierung")
	require.True(t, ok)

	doctorRows := func() *sqlmock.Rows {
		return sqlmock.NewRows(def.Columns).
			AddRow(int64(1), "Dr. Schmidt", "Kardiologie", int64(12)).
			AddRow(int64(2), "Dr. Weber", "Kardiologie", nil)
	}

	t.Run("table format", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(def.SelectAll())).WithArgs(50).WillReturnRows(doctorRows())
		svc := services.NewBrowseService(store, 1000, false, testutil.NewTestLogger(t))

		buf := new(bytes.Buffer)
		err := runBrowse(context.Background(), buf, svc, "arzt", &browseOptions{limit: "50", format: formatTable})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "ärztenummer")
		assert.Contains(t, out, "spezialisierung")
		assert.NotContains(t, out, "SPEZIALISIERUNG")
		assert.Contains(t, out, "Dr. Weber")
		assert.Contains(t, out, "NULL")
		assert.Contains(t, out, "(2 rows)")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered json", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(filter)).WithArgs("%kardio%", 10).WillReturnRows(doctorRows())
		svc := services.NewBrowseService(store, 1000, false, testutil.NewTestLogger(t))

		buf := new(bytes.Buffer)
		opts := &browseOptions{limit: "10", column: "spezialisierung", value: "kardio", format: formatJSON}
		require.NoError(t, runBrowse(context.Background(), buf, svc, "arzt", opts))

		var result struct {
			Table    string           `json:"table"`
			Rows     []map[string]any `json:"rows"`
			Limit    int              `json:"limit"`
			Filtered bool             `json:"filtered"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "arzt", result.Table)
		assert.Len(t, result.Rows, 2)
		assert.Equal(t, 10, result.Limit)
		assert.True(t, result.Filtered)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(def.SelectAll())).WithArgs(50).WillReturnRows(sqlmock.NewRows(def.Columns))
		svc := services.NewBrowseService(store, 1000, false, testutil.NewTestLogger(t))

		buf := new(bytes.Buffer)
		require.NoError(t, runBrowse(context.Background(), buf, svc, "arzt", &browseOptions{limit: "50", format: formatTable}))

		out := buf.String()
		for _, col := range def.Columns {
			assert.Contains(t, out, col)
		}
		assert.Contains(t, out, "(0 rows)")
	})

	t.Run("unknown table never reaches the database", func(t *testing.T) {
		store, mock := newMockStore(t)
		svc := services.NewBrowseService(store, 1000, false, testutil.NewTestLogger(t))

		err := runBrowse(context.Background(), new(bytes.Buffer), svc, "pg_user", &browseOptions{format: formatTable})
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidTable))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunGraph(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM todos ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content"}))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM patient ORDER BY patientennummer`)).
		WillReturnRows(sqlmock.NewRows([]string{"patientennummer", "name"}).AddRow(int64(1001), "Max Mustermann"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM arzt ORDER BY "ärztenummer"`)).
		WillReturnRows(sqlmock.NewRows([]string{"ärztenummer", "name"}).AddRow(int64(1), "Dr. Schmidt"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM medizin ORDER BY fachname`)).
		WillReturnRows(sqlmock.NewRows([]string{"fachname"}))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM behandelt ORDER BY patientennummer, "ärztenummer"`)).
		WillReturnRows(sqlmock.NewRows([]string{"patientennummer", "ärztenummer"}).AddRow(int64(1001), int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM nimmt ORDER BY patientennummer, fachname`)).
		WillReturnRows(sqlmock.NewRows([]string{"patientennummer", "fachname"}))

	buf := new(bytes.Buffer)
	require.NoError(t, runGraph(context.Background(), buf, services.NewGraphService(store, testutil.NewTestLogger(t))))

	var doc struct {
		Classes []struct {
			Name    string   `json:"name"`
			Label   string   `json:"label"`
			Imports []string `json:"imports"`
		} `json:"classes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Classes, 3)
	assert.Equal(t, "patient.1001", doc.Classes[0].Name)
	assert.Equal(t, "arzt.1", doc.Classes[1].Name)
	assert.Equal(t, "link.patient_arzt.1001.1", doc.Classes[2].Name)
	assert.Equal(t, []string{"patient.1001", "arzt.1"}, doc.Classes[2].Imports)
	assert.NoError(t, mock.ExpectationsWereMet())
}
