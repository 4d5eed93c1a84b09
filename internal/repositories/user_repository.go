package repositories

import (
	"context"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

type UserRepository struct {
	store *database.Store
}

func NewUserRepository(store *database.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserts the user and fills in its id. A taken username surfaces as a
// unique violation from the store.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	row, err := r.store.ReadOne(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, user.Username, user.PasswordHash)
	if err != nil {
		return err
	}
	user.ID = integer(row, "id")
	return nil
}

// FindByUsername returns nil when no such user exists.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row, err := r.store.ReadOne(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users WHERE username = $1
	`, username)
	if err != nil || row == nil {
		return nil, err
	}
	return userFromRow(row), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row, err := r.store.ReadOne(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users WHERE id = $1
	`, id)
	if err != nil || row == nil {
		return nil, err
	}
	return userFromRow(row), nil
}

func (r *UserRepository) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := r.store.Read(ctx, `SELECT username FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, text(row, "username"))
	}
	return names, nil
}

func userFromRow(row database.Row) *models.User {
	return &models.User{
		ID:           integer(row, "id"),
		Username:     text(row, "username"),
		PasswordHash: text(row, "password_hash"),
		CreatedAt:    text(row, "created_at"),
	}
}
