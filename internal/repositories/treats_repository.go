package repositories

import (
	"context"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

// TreatsRepository manages the behandelt association.
type TreatsRepository struct {
	store *database.Store
}

func NewTreatsRepository(store *database.Store) *TreatsRepository {
	return &TreatsRepository{store: store}
}

func (r *TreatsRepository) List(ctx context.Context) ([]models.TreatsRow, error) {
	rows, err := r.store.Read(ctx, `
		SELECT b.patientennummer, p.name AS patient_name, b."ärztenummer", a.name AS doctor_name
		FROM behandelt b
		LEFT JOIN patient p ON p.patientennummer = b.patientennummer
		LEFT JOIN arzt a ON a."ärztenummer" = b."ärztenummer"
		ORDER BY b.patientennummer, b."ärztenummer"
	`)
	if err != nil {
		return nil, err
	}

	out := make([]models.TreatsRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.TreatsRow{
			Treats: models.Treats{
				Patientennummer: integer(row, "patientennummer"),
				Aerztenummer:    integer(row, "ärztenummer"),
			},
			PatientName: text(row, "patient_name"),
			DoctorName:  text(row, "doctor_name"),
		})
	}
	return out, nil
}

func (r *TreatsRepository) Create(ctx context.Context, t models.Treats) error {
	return r.store.Write(ctx, `INSERT INTO behandelt (patientennummer, "ärztenummer") VALUES ($1, $2)`,
		t.Patientennummer, t.Aerztenummer)
}

func (r *TreatsRepository) Delete(ctx context.Context, t models.Treats) (bool, error) {
	n, err := r.store.Exec(ctx, `DELETE FROM behandelt WHERE patientennummer = $1 AND "ärztenummer" = $2`,
		t.Patientennummer, t.Aerztenummer)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
