package repositories

import (
	"context"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

type PatientRepository struct {
	store *database.Store
}

func NewPatientRepository(store *database.Store) *PatientRepository {
	return &PatientRepository{store: store}
}

func (r *PatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	rows, err := r.store.Read(ctx, `
		SELECT patientennummer, "alter", name, krankenkasse, krankheiten,
			"ehemalige aufenthalte", "ehemalige medikamente", bettnummer
		FROM patient
		ORDER BY patientennummer
	`)
	if err != nil {
		return nil, err
	}

	patients := make([]models.Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, models.Patient{
			Nummer:               integer(row, "patientennummer"),
			Alter:                nullableInt(row, "alter"),
			Name:                 text(row, "name"),
			Krankenkasse:         text(row, "krankenkasse"),
			Krankheiten:          text(row, "krankheiten"),
			EhemaligeAufenthalte: text(row, "ehemalige aufenthalte"),
			EhemaligeMedikamente: text(row, "ehemalige medikamente"),
			Bettnummer:           nullableInt(row, "bettnummer"),
		})
	}
	return patients, nil
}

func (r *PatientRepository) Create(ctx context.Context, p *models.Patient) error {
	return r.store.Write(ctx, `
		INSERT INTO patient (patientennummer, "alter", name, krankenkasse, krankheiten,
			"ehemalige aufenthalte", "ehemalige medikamente", bettnummer)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		p.Nummer,
		nullableArg(p.Alter),
		p.Name,
		p.Krankenkasse,
		p.Krankheiten,
		p.EhemaligeAufenthalte,
		p.EhemaligeMedikamente,
		nullableArg(p.Bettnummer),
	)
}

// Delete removes the patient together with its nimmt and behandelt rows in
// one transaction. It reports whether the patient existed.
func (r *PatientRepository) Delete(ctx context.Context, nummer int64) (bool, error) {
	affected, err := r.store.WriteAll(ctx,
		database.Statement{Query: `DELETE FROM nimmt WHERE patientennummer = $1`, Args: []any{nummer}},
		database.Statement{Query: `DELETE FROM behandelt WHERE patientennummer = $1`, Args: []any{nummer}},
		database.Statement{Query: `DELETE FROM patient WHERE patientennummer = $1`, Args: []any{nummer}},
	)
	if err != nil {
		return false, err
	}
	return affected[len(affected)-1] > 0, nil
}

// Options lists patients by name for dropdowns.
func (r *PatientRepository) Options(ctx context.Context) ([]models.Option, error) {
	rows, err := r.store.Read(ctx, `SELECT patientennummer, name FROM patient ORDER BY name, patientennummer`)
	if err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(rows))
	for _, row := range rows {
		opts = append(opts, models.Option{Value: text(row, "patientennummer"), Label: text(row, "name")})
	}
	return opts, nil
}
