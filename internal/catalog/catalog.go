// Package catalog is the closed set of tables the explorer and the graph export
// may read. Identifiers are constants quoted once at init; user input only ever
// reaches the database as bound parameters.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type Table string

const (
	Patient    Table = "patient"
	Medication Table = "medizin"
	Doctor     Table = "arzt"
	Stay       Table = "aktuellerAufenthalt"
	Takes      Table = "nimmt"
	Treats     Table = "behandelt"
	Users      Table = "users"
	Todos      Table = "todos"
)

// Definition describes one browsable table.
type Definition struct {
	Table      Table
	Title      string
	Columns    []string
	PrimaryKey []string
	// Account tables are only browsable in authenticated deployments.
	Account bool

	selectAll    string
	selectFilter map[string]string
}

var definitions = []*Definition{
	{
		Table:      Patient,
		Title:      "Patienten",
		Columns:    []string{"patientennummer", "alter", "name", "krankenkasse", "krankheiten", "ehemalige aufenthalte", "ehemalige medikamente", "bettnummer"},
		PrimaryKey: []string{"patientennummer"},
	},
	{
		Table:      Medication,
		Title:      "Medizin",
		Columns:    []string{"fachname", "dosierung"},
		PrimaryKey: []string{"fachname"},
	},
	{
		Table:      Doctor,
		Title:      "Ärzte",
		Columns:    []string{"ärztenummer", "name", "spezialisierung", "anstellzeit"},
		PrimaryKey: []string{"ärztenummer"},
	},
	{
		Table:      Stay,
		Title:      "Aktuelle Aufenthalte",
		Columns:    []string{"bettnummer", "pflegebedarf", "anfangsdatum"},
		PrimaryKey: []string{"bettnummer"},
	},
	{
		Table:      Takes,
		Title:      "nimmt",
		Columns:    []string{"patientennummer", "fachname"},
		PrimaryKey: []string{"patientennummer", "fachname"},
	},
	{
		Table:      Treats,
		Title:      "behandelt",
		Columns:    []string{"patientennummer", "ärztenummer"},
		PrimaryKey: []string{"patientennummer", "ärztenummer"},
	},
	{
		// password_hash is deliberately not listed.
		Table:      Users,
		Title:      "Benutzer",
		Columns:    []string{"id", "username", "created_at"},
		PrimaryKey: []string{"id"},
		Account:    true,
	},
	{
		Table:      Todos,
		Title:      "Todos",
		Columns:    []string{"id", "user_id", "content", "due"},
		PrimaryKey: []string{"id"},
		Account:    true,
	},
}

var byName = map[Table]*Definition{}

func init() {
	for _, def := range definitions {
		def.build()
		byName[def.Table] = def
	}
}

func (d *Definition) build() {
	cols := quoteAll(d.Columns)
	from := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), quote(string(d.Table)))
	order := fmt.Sprintf("ORDER BY %s", strings.Join(quoteAll(d.PrimaryKey), ", "))

	d.selectAll = fmt.Sprintf("%s %s LIMIT $1", from, order)
	d.selectFilter = make(map[string]string, len(d.Columns))
	for i, col := range d.Columns {
		d.selectFilter[col] = fmt.Sprintf(`%s WHERE CAST(%s AS TEXT) ILIKE $1 ESCAPE '\' %s LIMIT $2`, from, cols[i], order)
	}
}

// SelectAll returns the statement listing rows in key order; $1 is the limit.
func (d *Definition) SelectAll() string {
	return d.selectAll
}

// SelectFilter returns the substring-search statement for column; $1 is the
// ILIKE pattern and $2 the limit. ok is false for unknown columns.
func (d *Definition) SelectFilter(column string) (query string, ok bool) {
	query, ok = d.selectFilter[column]
	return query, ok
}

func (d *Definition) HasColumn(column string) bool {
	_, ok := d.selectFilter[column]
	return ok
}

// Lookup resolves name against the allow-list. Account tables resolve only
// when includeAccounts is set.
func Lookup(name string, includeAccounts bool) (*Definition, bool) {
	def, ok := byName[Table(name)]
	if !ok || (def.Account && !includeAccounts) {
		return nil, false
	}
	return def, true
}

// All lists the browsable tables in display order.
func All(includeAccounts bool) []*Definition {
	out := make([]*Definition, 0, len(definitions))
	for _, def := range definitions {
		if def.Account && !includeAccounts {
			continue
		}
		out = append(out, def)
	}
	return out
}

// Names is All reduced to table names.
func Names(includeAccounts bool) []string {
	defs := All(includeAccounts)
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = string(def.Table)
	}
	return names
}

// ContainsPattern turns a search value into an ILIKE pattern matching it as a
// literal substring.
func ContainsPattern(value string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(value) + "%"
}

func quote(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

func quoteAll(idents []string) []string {
	out := make([]string, len(idents))
	for i, ident := range idents {
		out[i] = quote(ident)
	}
	return out
}
