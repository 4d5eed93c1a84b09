package services

import (
	"context"
	"fmt"
	"log/slog"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

const maxLabelRunes = 50

// GraphService exports the ward data as nodes for a hierarchical edge
// bundling view: one node per entity row and one node per association row.
type GraphService struct {
	store  *database.Store
	logger *slog.Logger
}

func NewGraphService(store *database.Store, logger *slog.Logger) *GraphService {
	return &GraphService{store: store, logger: logger}
}

// Export reads users, todos, patients, doctors and medications, then the
// behandelt and nimmt associations, each in key order. The result is
// deterministic for a given database state.
func (s *GraphService) Export(ctx context.Context) ([]models.GraphNode, error) {
	nodes := []models.GraphNode{}

	users, err := s.store.Read(ctx, `SELECT id, username FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	for _, u := range users {
		id, _ := u.String("id")
		nodes = append(nodes, entityNode("users."+id, labelOr(u, "username", "user"+id), nil))
	}

	todos, err := s.store.Read(ctx, `SELECT id, user_id, content FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}
	for _, t := range todos {
		id, _ := t.String("id")
		content, _ := t.String("content")
		var imports []string
		if owner, ok := t.String("user_id"); ok {
			imports = []string{"users." + owner}
		}
		nodes = append(nodes, entityNode("todos."+id, content, imports))
	}

	patients, err := s.store.Read(ctx, `SELECT patientennummer, name FROM patient ORDER BY patientennummer`)
	if err != nil {
		return nil, fmt.Errorf("failed to read patients: %w", err)
	}
	for _, p := range patients {
		nr, _ := p.String("patientennummer")
		nodes = append(nodes, entityNode("patient."+nr, labelOr(p, "name", "patient"+nr), nil))
	}

	doctors, err := s.store.Read(ctx, `SELECT "ärztenummer", name FROM arzt ORDER BY "ärztenummer"`)
	if err != nil {
		return nil, fmt.Errorf("failed to read doctors: %w", err)
	}
	for _, d := range doctors {
		nr, _ := d.String("ärztenummer")
		nodes = append(nodes, entityNode("arzt."+nr, labelOr(d, "name", "arzt"+nr), nil))
	}

	meds, err := s.store.Read(ctx, `SELECT fachname FROM medizin ORDER BY fachname`)
	if err != nil {
		return nil, fmt.Errorf("failed to read medications: %w", err)
	}
	for _, m := range meds {
		name, _ := m.String("fachname")
		nodes = append(nodes, entityNode("medizin."+name, name, nil))
	}

	treats, err := s.store.Read(ctx, `SELECT patientennummer, "ärztenummer" FROM behandelt ORDER BY patientennummer, "ärztenummer"`)
	if err != nil {
		return nil, fmt.Errorf("failed to read behandelt: %w", err)
	}
	for _, b := range treats {
		p, _ := b.String("patientennummer")
		a, _ := b.String("ärztenummer")
		nodes = append(nodes, edgeNode(
			fmt.Sprintf("link.patient_arzt.%s.%s", p, a),
			"patient."+p, "arzt."+a,
		))
	}

	takes, err := s.store.Read(ctx, `SELECT patientennummer, fachname FROM nimmt ORDER BY patientennummer, fachname`)
	if err != nil {
		return nil, fmt.Errorf("failed to read nimmt: %w", err)
	}
	for _, n := range takes {
		p, _ := n.String("patientennummer")
		f, _ := n.String("fachname")
		nodes = append(nodes, edgeNode(
			fmt.Sprintf("link.patient_med.%s.%s", p, f),
			"patient."+p, "medizin."+f,
		))
	}

	s.logger.Debug("graph exported", "nodes", len(nodes),
		"edges", len(treats)+len(takes))
	return nodes, nil
}

func entityNode(name, label string, imports []string) models.GraphNode {
	if imports == nil {
		imports = []string{}
	}
	return models.GraphNode{Name: name, Label: truncateLabel(label), Imports: imports}
}

func edgeNode(name, from, to string) models.GraphNode {
	return models.GraphNode{Name: name, Label: "", Imports: []string{from, to}}
}

// labelOr returns the column text, or fallback when it is NULL or empty.
func labelOr(row database.Row, key, fallback string) string {
	if s, ok := row.String(key); ok && s != "" {
		return s
	}
	return fallback
}

// truncateLabel cuts labels longer than maxLabelRunes and appends "...".
func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= maxLabelRunes {
		return label
	}
	return string(runes[:maxLabelRunes]) + "..."
}
