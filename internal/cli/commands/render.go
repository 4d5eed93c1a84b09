package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wardbook/internal/services"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTables(w io.Writer, tables []services.TableInfo, format string) error {
	if format == formatJSON {
		return renderJSON(w, tables)
	}

	t := newTableWriter(w)
	t.AppendHeader(table.Row{"name", "title", "columns"})
	for _, info := range tables {
		t.AppendRow(table.Row{info.Name, info.Title, strings.Join(info.Columns, ", ")})
	}
	t.Render()
	return nil
}

func renderBrowse(w io.Writer, result *services.BrowseResult, format string) error {
	if format == formatJSON {
		return renderJSON(w, result)
	}

	t := newTableWriter(w)

	header := make(table.Row, len(result.Columns))
	for i, col := range result.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range result.Rows {
		line := make(table.Row, len(result.Columns))
		for i, col := range result.Columns {
			line[i] = formatValue(row[col])
		}
		t.AppendRow(line)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(result.Rows))
	return nil
}

// newTableWriter keeps header cells as written so they match the names
// accepted by --column.
func newTableWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
