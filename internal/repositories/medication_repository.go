package repositories

import (
	"context"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

type MedicationRepository struct {
	store *database.Store
}

func NewMedicationRepository(store *database.Store) *MedicationRepository {
	return &MedicationRepository{store: store}
}

func (r *MedicationRepository) List(ctx context.Context) ([]models.Medication, error) {
	rows, err := r.store.Read(ctx, `SELECT fachname, dosierung FROM medizin ORDER BY fachname`)
	if err != nil {
		return nil, err
	}

	meds := make([]models.Medication, 0, len(rows))
	for _, row := range rows {
		meds = append(meds, models.Medication{
			Fachname:  text(row, "fachname"),
			Dosierung: text(row, "dosierung"),
		})
	}
	return meds, nil
}

func (r *MedicationRepository) Create(ctx context.Context, m *models.Medication) error {
	return r.store.Write(ctx, `INSERT INTO medizin (fachname, dosierung) VALUES ($1, $2)`, m.Fachname, m.Dosierung)
}

// Delete removes the medication and the nimmt rows referencing it.
func (r *MedicationRepository) Delete(ctx context.Context, fachname string) (bool, error) {
	affected, err := r.store.WriteAll(ctx,
		database.Statement{Query: `DELETE FROM nimmt WHERE fachname = $1`, Args: []any{fachname}},
		database.Statement{Query: `DELETE FROM medizin WHERE fachname = $1`, Args: []any{fachname}},
	)
	if err != nil {
		return false, err
	}
	return affected[len(affected)-1] > 0, nil
}

func (r *MedicationRepository) Options(ctx context.Context) ([]models.Option, error) {
	meds, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(meds))
	for _, m := range meds {
		opts = append(opts, models.Option{Value: m.Fachname, Label: m.Fachname})
	}
	return opts, nil
}
