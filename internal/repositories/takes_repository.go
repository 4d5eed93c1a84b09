package repositories

import (
	"context"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

// TakesRepository manages the nimmt association.
type TakesRepository struct {
	store *database.Store
}

func NewTakesRepository(store *database.Store) *TakesRepository {
	return &TakesRepository{store: store}
}

func (r *TakesRepository) List(ctx context.Context) ([]models.TakesRow, error) {
	rows, err := r.store.Read(ctx, `
		SELECT n.patientennummer, p.name AS patient_name, n.fachname, m.dosierung
		FROM nimmt n
		LEFT JOIN patient p ON p.patientennummer = n.patientennummer
		LEFT JOIN medizin m ON m.fachname = n.fachname
		ORDER BY n.patientennummer, n.fachname
	`)
	if err != nil {
		return nil, err
	}

	out := make([]models.TakesRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.TakesRow{
			Takes: models.Takes{
				Patientennummer: integer(row, "patientennummer"),
				Fachname:        text(row, "fachname"),
			},
			PatientName: text(row, "patient_name"),
			Dosierung:   text(row, "dosierung"),
		})
	}
	return out, nil
}

func (r *TakesRepository) Create(ctx context.Context, t models.Takes) error {
	return r.store.Write(ctx, `INSERT INTO nimmt (patientennummer, fachname) VALUES ($1, $2)`,
		t.Patientennummer, t.Fachname)
}

func (r *TakesRepository) Delete(ctx context.Context, t models.Takes) (bool, error) {
	n, err := r.store.Exec(ctx, `DELETE FROM nimmt WHERE patientennummer = $1 AND fachname = $2`,
		t.Patientennummer, t.Fachname)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
