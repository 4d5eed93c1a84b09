package repositories

import (
	"context"
	"time"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

type TodoRepository struct {
	store *database.Store
}

func NewTodoRepository(store *database.Store) *TodoRepository {
	return &TodoRepository{store: store}
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	rows, err := r.store.Read(ctx, `
		SELECT id, user_id, content, due
		FROM todos
		WHERE user_id = $1
		ORDER BY due NULLS LAST, id
	`, userID)
	if err != nil {
		return nil, err
	}

	todos := make([]models.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, models.Todo{
			ID:      integer(row, "id"),
			UserID:  integer(row, "user_id"),
			Content: text(row, "content"),
			Due:     text(row, "due"),
		})
	}
	return todos, nil
}

// Create inserts a to-do; a nil due is stored as NULL.
func (r *TodoRepository) Create(ctx context.Context, userID int64, content string, due *time.Time) (int64, error) {
	var dueArg any
	if due != nil {
		dueArg = *due
	}
	row, err := r.store.ReadOne(ctx, `
		INSERT INTO todos (user_id, content, due)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, content, dueArg)
	if err != nil {
		return 0, err
	}
	return integer(row, "id"), nil
}

// Delete removes the to-do only when it belongs to userID.
func (r *TodoRepository) Delete(ctx context.Context, userID, id int64) (bool, error) {
	n, err := r.store.Exec(ctx, `DELETE FROM todos WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
