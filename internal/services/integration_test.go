//go:build integration

package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"wardbook/internal/apperrors"
	"wardbook/internal/database"
	"wardbook/internal/models"
	"wardbook/internal/repositories"
	"wardbook/internal/testutil"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("wardbook"),
		postgres.WithUsername("ward"),
		postgres.WithPassword("ward"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.ConnectURL(ctx, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool, testutil.NewTestLogger(t)))
	return pool
}

func resetWard(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE nimmt, behandelt, patient, arzt, medizin, "aktuellerAufenthalt", todos, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func TestPostgresIntegration(t *testing.T) {
	pool := startPostgres(t)
	logger := testutil.NewTestLogger(t)
	store := database.NewPoolStore(pool, logger)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	t.Run("graph links treated patient to doctor", func(t *testing.T) {
		resetWard(t, pool)
		ward := newWardService(t, store)
		require.NoError(t, ward.CreatePatient(ctx, &models.Patient{Nummer: 1001, Name: "Mila Meier"}))
		require.NoError(t, ward.CreateDoctor(ctx, &models.Doctor{Nummer: 1, Name: "Dr. Anna Weber"}))
		require.NoError(t, ward.CreateTreats(ctx, models.Treats{Patientennummer: 1001, Aerztenummer: 1}))

		nodes, err := NewGraphService(store, logger).Export(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.GraphNode{
			{Name: "patient.1001", Label: "Mila Meier", Imports: []string{}},
			{Name: "arzt.1", Label: "Dr. Anna Weber", Imports: []string{}},
			{Name: "link.patient_arzt.1001.1", Label: "", Imports: []string{"patient.1001", "arzt.1"}},
		}, nodes)
	})

	t.Run("browse respects limit and filter", func(t *testing.T) {
		resetWard(t, pool)
		require.NoError(t, database.Seed(ctx, pool, logger))
		browse := NewBrowseService(store, 1000, true, logger)

		result, err := browse.Browse(ctx, BrowseRequest{Table: "patient", Limit: "2"})
		require.NoError(t, err)
		assert.Len(t, result.Rows, 2)

		result, err = browse.Browse(ctx, BrowseRequest{Table: "patient", SearchColumn: "name", SearchValue: "MEIER"})
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "Mila Meier", result.Rows[0]["name"])

		result, err = browse.Browse(ctx, BrowseRequest{Table: "aktuellerAufenthalt", SearchColumn: "anfangsdatum", SearchValue: "2026-01-1"})
		require.NoError(t, err)
		assert.Len(t, result.Rows, 2)

		result, err = browse.Browse(ctx, BrowseRequest{Table: "patient", SearchColumn: "name", SearchValue: "%"})
		require.NoError(t, err)
		assert.Empty(t, result.Rows)

		result, err = browse.Browse(ctx, BrowseRequest{Table: "users"})
		require.NoError(t, err)
		assert.NotContains(t, result.Columns, "password_hash")
	})

	t.Run("deleting a patient removes its associations", func(t *testing.T) {
		resetWard(t, pool)
		require.NoError(t, database.Seed(ctx, pool, logger))
		ward := newWardService(t, store)

		require.NoError(t, ward.DeletePatient(ctx, 1001))

		takes, err := ward.ListTakes(ctx)
		require.NoError(t, err)
		for _, row := range takes {
			assert.NotEqual(t, int64(1001), row.Patientennummer)
		}
		treats, err := ward.ListTreats(ctx)
		require.NoError(t, err)
		for _, row := range treats {
			assert.NotEqual(t, int64(1001), row.Patientennummer)
		}

		err = ward.DeletePatient(ctx, 1001)
		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run("duplicate key is a constraint violation", func(t *testing.T) {
		resetWard(t, pool)
		ward := newWardService(t, store)
		require.NoError(t, ward.CreateMedication(ctx, &models.Medication{Fachname: "Aspirin", Dosierung: "100 mg"}))

		err := ward.CreateMedication(ctx, &models.Medication{Fachname: "Aspirin", Dosierung: "500 mg"})
		require.Error(t, err)
		assert.True(t, apperrors.IsUniqueViolation(err))
	})

	t.Run("accounts and todos", func(t *testing.T) {
		resetWard(t, pool)
		users := repositories.NewUserRepository(store)
		auth := NewAuthService(users, logger)

		created, err := auth.Register(ctx, "anna", "geheim")
		require.NoError(t, err)
		assert.True(t, created)

		created, err = auth.Register(ctx, "anna", "anders")
		require.NoError(t, err)
		assert.False(t, created)

		user, err := auth.Authenticate(ctx, "anna", "geheim")
		require.NoError(t, err)
		require.NotNil(t, user)

		user2, err := auth.Authenticate(ctx, "anna", "falsch")
		require.NoError(t, err)
		assert.Nil(t, user2)

		todos := NewTodoService(repositories.NewTodoRepository(store))
		todo, err := todos.Create(ctx, user.ID, "Visite vorbereiten", "2026-02-01")
		require.NoError(t, err)

		list, err := todos.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Visite vorbereiten", list[0].Content)

		require.NoError(t, todos.Complete(ctx, user.ID, todo.ID))
		list, err = todos.List(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("schema marks association tables as junctions", func(t *testing.T) {
		tables, err := NewSchemaService(repositories.NewSchemaRepository(store), false, logger).Describe(ctx)
		require.NoError(t, err)

		junctions := map[string]bool{}
		for _, table := range tables {
			junctions[table.Name] = table.Junction
		}
		assert.True(t, junctions["nimmt"])
		assert.True(t, junctions["behandelt"])
		assert.False(t, junctions["patient"])
	})
}
