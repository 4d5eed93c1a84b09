package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardbook/internal/apperrors"
	"wardbook/internal/repositories"
)

func TestParseDue(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{raw: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{raw: "2024-05-01T14:30", want: time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)},
		{raw: "2024-05-01T14:30:00Z", want: time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)},
		{raw: "01.05.2024", wantErr: true},
		{raw: "tomorrow", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDue(tt.raw)
			if tt.wantErr {
				assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestTodoService_Create(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todos`)).
		WithArgs(int64(3), "Visite", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	todo, err := NewTodoService(repositories.NewTodoRepository(store)).
		Create(context.Background(), 3, " Visite ", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(11), todo.ID)
	assert.Equal(t, "Visite", todo.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoService_CreateWithoutDue(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todos`)).
		WithArgs(int64(3), "Visite", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	_, err := NewTodoService(repositories.NewTodoRepository(store)).
		Create(context.Background(), 3, "Visite", "")
	require.NoError(t, err)
}

func TestTodoService_CreateRequiresContent(t *testing.T) {
	store, mock := newMockStore(t)
	_, err := NewTodoService(repositories.NewTodoRepository(store)).
		Create(context.Background(), 3, "   ", "2024-05-01")
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoService_CompleteForeignTodo(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos WHERE user_id = $1 AND id = $2`)).
		WithArgs(int64(3), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewTodoService(repositories.NewTodoRepository(store)).Complete(context.Background(), 3, 99)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
