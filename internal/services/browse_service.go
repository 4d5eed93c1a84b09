package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"wardbook/internal/apperrors"
	"wardbook/internal/catalog"
	"wardbook/internal/database"
)

const DefaultBrowseLimit = 50

// BrowseRequest carries the raw explorer form values.
type BrowseRequest struct {
	Table        string `form:"table" json:"table"`
	Limit        string `form:"limit" json:"limit"`
	SearchColumn string `form:"search_column" json:"search_column"`
	SearchValue  string `form:"search_value" json:"search_value"`
}

type BrowseResult struct {
	Table    string         `json:"table"`
	Columns  []string       `json:"columns"`
	Rows     []database.Row `json:"rows"`
	Limit    int            `json:"limit"`
	Filtered bool           `json:"filtered"`
}

// TableInfo describes one browsable table for selection lists.
type TableInfo struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
}

// BrowseService is the read-only table explorer over the allow-listed tables.
type BrowseService struct {
	store           *database.Store
	maxLimit        int
	includeAccounts bool
	logger          *slog.Logger
}

func NewBrowseService(store *database.Store, maxLimit int, includeAccounts bool, logger *slog.Logger) *BrowseService {
	return &BrowseService{
		store:           store,
		maxLimit:        maxLimit,
		includeAccounts: includeAccounts,
		logger:          logger,
	}
}

func (s *BrowseService) Tables() []TableInfo {
	defs := catalog.All(s.includeAccounts)
	out := make([]TableInfo, 0, len(defs))
	for _, def := range defs {
		out = append(out, TableInfo{Name: string(def.Table), Title: def.Title, Columns: def.Columns})
	}
	return out
}

// Browse returns up to the requested number of rows of an allow-listed table,
// optionally filtered by a case-insensitive substring match on one column.
// Nothing is sent to the database unless table, limit and column validate.
func (s *BrowseService) Browse(ctx context.Context, req BrowseRequest) (*BrowseResult, error) {
	def, ok := catalog.Lookup(req.Table, s.includeAccounts)
	if !ok {
		return nil, apperrors.InvalidTable(req.Table)
	}

	limit, err := s.parseLimit(req.Limit)
	if err != nil {
		return nil, err
	}

	result := &BrowseResult{
		Table:   string(def.Table),
		Columns: def.Columns,
		Limit:   limit,
	}

	var rows []database.Row
	if req.SearchColumn != "" && req.SearchValue != "" {
		query, ok := def.SelectFilter(req.SearchColumn)
		if !ok {
			return nil, apperrors.InvalidColumn(req.Table, req.SearchColumn)
		}
		rows, err = s.store.Read(ctx, query, catalog.ContainsPattern(req.SearchValue), limit)
		result.Filtered = true
	} else {
		rows, err = s.store.Read(ctx, def.SelectAll(), limit)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("table browsed", "table", def.Table, "rows", len(rows), "filtered", result.Filtered)
	result.Rows = rows
	return result, nil
}

func (s *BrowseService) parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return min(DefaultBrowseLimit, s.maxLimit), nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, apperrors.InvalidLimit(raw)
	}
	if limit > s.maxLimit {
		return s.maxLimit, nil
	}
	return limit, nil
}
