package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations applies the ward schema. Every statement is idempotent, so it
// runs on each startup. Referenced tables come before referencing ones.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	migrations := []string{
		createPatientTable,
		createMedizinTable,
		createArztTable,
		createAufenthaltTable,
		createNimmtTable,
		createBehandeltTable,
		createUsersTable,
		createTodosTable,
	}

	for i, migration := range migrations {
		logger.Debug("running migration", "step", i+1, "total", len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("all migrations completed successfully", "count", len(migrations))
	return nil
}

// Seed inserts the demo ward. Existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	seeds := []string{
		seedMedizin,
		seedArzt,
		seedPatient,
		seedAufenthalt,
		seedNimmt,
		seedBehandelt,
	}

	for i, seed := range seeds {
		if _, err := pool.Exec(ctx, seed); err != nil {
			return fmt.Errorf("seed %d failed: %w", i+1, err)
		}
	}

	logger.Info("demo data seeded", "statements", len(seeds))
	return nil
}

const createPatientTable = `
CREATE TABLE IF NOT EXISTS patient (
  patientennummer INT PRIMARY KEY,
  "alter" INT,
  name TEXT,
  krankenkasse TEXT,
  krankheiten TEXT,
  "ehemalige aufenthalte" TEXT,
  "ehemalige medikamente" TEXT,
  bettnummer INT
);
`

const createMedizinTable = `
CREATE TABLE IF NOT EXISTS medizin (
  fachname VARCHAR(255) PRIMARY KEY,
  dosierung VARCHAR(255)
);
`

const createArztTable = `
CREATE TABLE IF NOT EXISTS arzt (
  "ärztenummer" INT PRIMARY KEY,
  name VARCHAR(255),
  spezialisierung VARCHAR(255),
  anstellzeit INT
);
`

const createAufenthaltTable = `
CREATE TABLE IF NOT EXISTS "aktuellerAufenthalt" (
  bettnummer INT PRIMARY KEY,
  pflegebedarf TEXT,
  anfangsdatum DATE
);
`

const createNimmtTable = `
CREATE TABLE IF NOT EXISTS nimmt (
  patientennummer INT REFERENCES patient(patientennummer),
  fachname VARCHAR(255) REFERENCES medizin(fachname),
  PRIMARY KEY (patientennummer, fachname)
);
`

const createBehandeltTable = `
CREATE TABLE IF NOT EXISTS behandelt (
  patientennummer INT REFERENCES patient(patientennummer),
  "ärztenummer" INT REFERENCES arzt("ärztenummer"),
  PRIMARY KEY (patientennummer, "ärztenummer")
);
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id SERIAL PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos (
  id SERIAL PRIMARY KEY,
  user_id INT REFERENCES users(id) ON DELETE CASCADE,
  content TEXT,
  due TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_todos_user_id ON todos(user_id);
`

const seedMedizin = `
INSERT INTO medizin (fachname, dosierung)
VALUES
  ('Salbutamol', '2 Hübe bei Atemnot'),
  ('Metformin', '500 mg morgens und abends'),
  ('Ibuprofen', '400 mg bei Schmerzen')
ON CONFLICT DO NOTHING;
`

const seedArzt = `
INSERT INTO arzt ("ärztenummer", name, spezialisierung, anstellzeit)
VALUES
  (1, 'Dr. Anna Weber', 'Innere Medizin', 8),
  (2, 'Dr. Lukas Frei', 'Neurologie', 5),
  (3, 'Dr. Sarah Müller', 'Orthopädie', 10)
ON CONFLICT DO NOTHING;
`

const seedPatient = `
INSERT INTO patient
  (patientennummer, "alter", name, krankenkasse, krankheiten,
   "ehemalige aufenthalte", "ehemalige medikamente", bettnummer)
VALUES
  (1001, 34, 'Mila Meier', 'CSS', 'Asthma',
   '2018: Lungenentzündung; 2019: Bronchitis', 'Salbutamol', 12),
  (1002, 58, 'Noah Keller', 'Helsana', 'Diabetes Typ 2',
   '2020: Bluthochdruck; 2021: Knie-OP', 'Metformin', 14),
  (1003, 22, 'Lea Schmid', 'SWICA', 'Migräne',
   '2019: Beobachtung Neurologie', 'Ibuprofen', 15)
ON CONFLICT DO NOTHING;
`

const seedAufenthalt = `
INSERT INTO "aktuellerAufenthalt" (bettnummer, pflegebedarf, anfangsdatum)
VALUES
  (12, 'mittel', '2026-01-10'),
  (14, 'hoch', '2026-01-08'),
  (15, 'niedrig', '2026-01-12')
ON CONFLICT DO NOTHING;
`

const seedNimmt = `
INSERT INTO nimmt (patientennummer, fachname)
VALUES
  (1001, 'Salbutamol'),
  (1002, 'Metformin'),
  (1003, 'Ibuprofen')
ON CONFLICT DO NOTHING;
`

const seedBehandelt = `
INSERT INTO behandelt (patientennummer, "ärztenummer")
VALUES
  (1001, 1),
  (1002, 3),
  (1003, 2)
ON CONFLICT DO NOTHING;
`
