package repositories

import (
	"context"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

type StayRepository struct {
	store *database.Store
}

func NewStayRepository(store *database.Store) *StayRepository {
	return &StayRepository{store: store}
}

func (r *StayRepository) List(ctx context.Context) ([]models.Stay, error) {
	rows, err := r.store.Read(ctx, `
		SELECT bettnummer, pflegebedarf, anfangsdatum
		FROM "aktuellerAufenthalt"
		ORDER BY bettnummer
	`)
	if err != nil {
		return nil, err
	}

	stays := make([]models.Stay, 0, len(rows))
	for _, row := range rows {
		stays = append(stays, models.Stay{
			Bettnummer:   integer(row, "bettnummer"),
			Pflegebedarf: text(row, "pflegebedarf"),
			Anfangsdatum: text(row, "anfangsdatum"),
		})
	}
	return stays, nil
}

func (r *StayRepository) Create(ctx context.Context, s *models.Stay) error {
	return r.store.Write(ctx, `
		INSERT INTO "aktuellerAufenthalt" (bettnummer, pflegebedarf, anfangsdatum)
		VALUES ($1, $2, $3)
	`, s.Bettnummer, s.Pflegebedarf, s.Anfangsdatum)
}

func (r *StayRepository) Delete(ctx context.Context, bettnummer int64) (bool, error) {
	n, err := r.store.Exec(ctx, `DELETE FROM "aktuellerAufenthalt" WHERE bettnummer = $1`, bettnummer)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
