package repositories

import (
	"context"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

type DoctorRepository struct {
	store *database.Store
}

func NewDoctorRepository(store *database.Store) *DoctorRepository {
	return &DoctorRepository{store: store}
}

func (r *DoctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	rows, err := r.store.Read(ctx, `
		SELECT "ärztenummer", name, spezialisierung, anstellzeit
		FROM arzt
		ORDER BY "ärztenummer"
	`)
	if err != nil {
		return nil, err
	}

	doctors := make([]models.Doctor, 0, len(rows))
	for _, row := range rows {
		doctors = append(doctors, models.Doctor{
			Nummer:          integer(row, "ärztenummer"),
			Name:            text(row, "name"),
			Spezialisierung: text(row, "spezialisierung"),
			Anstellzeit:     nullableInt(row, "anstellzeit"),
		})
	}
	return doctors, nil
}

func (r *DoctorRepository) Create(ctx context.Context, d *models.Doctor) error {
	return r.store.Write(ctx, `
		INSERT INTO arzt ("ärztenummer", name, spezialisierung, anstellzeit)
		VALUES ($1, $2, $3, $4)
	`, d.Nummer, d.Name, d.Spezialisierung, nullableArg(d.Anstellzeit))
}

// Delete removes the doctor and the behandelt rows referencing it.
func (r *DoctorRepository) Delete(ctx context.Context, nummer int64) (bool, error) {
	affected, err := r.store.WriteAll(ctx,
		database.Statement{Query: `DELETE FROM behandelt WHERE "ärztenummer" = $1`, Args: []any{nummer}},
		database.Statement{Query: `DELETE FROM arzt WHERE "ärztenummer" = $1`, Args: []any{nummer}},
	)
	if err != nil {
		return false, err
	}
	return affected[len(affected)-1] > 0, nil
}

func (r *DoctorRepository) Options(ctx context.Context) ([]models.Option, error) {
	rows, err := r.store.Read(ctx, `SELECT "ärztenummer", name FROM arzt ORDER BY name, "ärztenummer"`)
	if err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(rows))
	for _, row := range rows {
		opts = append(opts, models.Option{Value: text(row, "ärztenummer"), Label: text(row, "name")})
	}
	return opts, nil
}
