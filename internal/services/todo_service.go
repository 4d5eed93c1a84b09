package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wardbook/internal/apperrors"
	"wardbook/internal/models"
	"wardbook/internal/repositories"
)

// Accepted due formats: HTML date and datetime-local inputs, and RFC 3339.
var dueLayouts = []string{time.DateOnly, "2006-01-02T15:04", time.RFC3339}

type TodoService struct {
	todoRepo *repositories.TodoRepository
}

func NewTodoService(todoRepo *repositories.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]models.Todo, error) {
	return s.todoRepo.ListByUser(ctx, userID)
}

func (s *TodoService) Create(ctx context.Context, userID int64, content, due string) (*models.Todo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.InvalidInput("content is required")
	}

	var dueAt *time.Time
	if due = strings.TrimSpace(due); due != "" {
		parsed, err := ParseDue(due)
		if err != nil {
			return nil, err
		}
		dueAt = &parsed
	}

	id, err := s.todoRepo.Create(ctx, userID, content, dueAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return &models.Todo{ID: id, UserID: userID, Content: content, Due: due}, nil
}

// Complete deletes the to-do when it belongs to userID.
func (s *TodoService) Complete(ctx context.Context, userID, id int64) error {
	found, err := s.todoRepo.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to complete todo %d: %w", id, err)
	}
	if !found {
		return apperrors.NotFound(fmt.Sprintf("todo %d not found", id))
	}
	return nil
}

func ParseDue(raw string) (time.Time, error) {
	for _, layout := range dueLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.InvalidInput(fmt.Sprintf("invalid due date %q", raw))
}
