package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"wardbook/internal/catalog"
	"wardbook/internal/models"
	"wardbook/internal/repositories"
)

const (
	maxJunctionTableColumns = 6
	minJunctionTableFKs     = 2
)

// SchemaService introspects the allow-listed tables through information_schema.
type SchemaService struct {
	schemaRepo      *repositories.SchemaRepository
	includeAccounts bool
	logger          *slog.Logger
}

func NewSchemaService(schemaRepo *repositories.SchemaRepository, includeAccounts bool, logger *slog.Logger) *SchemaService {
	return &SchemaService{
		schemaRepo:      schemaRepo,
		includeAccounts: includeAccounts,
		logger:          logger,
	}
}

// Describe returns columns, keys and junction flags for every browsable table.
func (s *SchemaService) Describe(ctx context.Context) ([]models.Table, error) {
	tables, err := s.parseTables(ctx)
	if err != nil {
		return nil, err
	}
	junctions := detectJunctionTables(tables)
	for i := range tables {
		tables[i].Junction = junctions[tables[i].Name]
	}
	return tables, nil
}

// Visualize renders the schema as a Mermaid ER diagram.
func (s *SchemaService) Visualize(ctx context.Context) (string, error) {
	tables, err := s.parseTables(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to parse tables: %w", err)
	}

	relationships, err := s.buildRelationships(ctx, tables)
	if err != nil {
		return "", fmt.Errorf("failed to build relationships: %w", err)
	}

	s.logger.Debug("schema visualized", "tables", len(tables), "relationships", len(relationships))
	return generateMermaid(tables, relationships), nil
}

func (s *SchemaService) parseTables(ctx context.Context) ([]models.Table, error) {
	names := catalog.Names(s.includeAccounts)
	tables := make([]models.Table, 0, len(names))

	for _, name := range names {
		table := models.Table{Name: name}

		columns, err := s.schemaRepo.GetColumns(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for %s: %w", name, err)
		}
		table.Columns = columns

		pks, err := s.schemaRepo.GetPrimaryKeys(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get primary keys for %s: %w", name, err)
		}
		table.PrimaryKeys = pks

		fks, err := s.schemaRepo.GetForeignKeys(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get foreign keys for %s: %w", name, err)
		}
		table.ForeignKeys = fks

		tables = append(tables, table)
	}

	return tables, nil
}

func (s *SchemaService) buildRelationships(ctx context.Context, tables []models.Table) ([]models.Relationship, error) {
	var relationships []models.Relationship
	junctions := detectJunctionTables(tables)

	for _, table := range tables {
		if junctions[table.Name] {
			// many-to-many between every pair of referenced tables
			for i := 0; i < len(table.ForeignKeys); i++ {
				for j := i + 1; j < len(table.ForeignKeys); j++ {
					relationships = append(relationships, models.Relationship{
						FromTable: table.ForeignKeys[i].ToTable,
						ToTable:   table.ForeignKeys[j].ToTable,
						Type:      "}o--o{",
					})
				}
			}
			continue
		}

		if len(table.ForeignKeys) == 0 {
			continue
		}
		unique, err := s.schemaRepo.GetUniqueColumns(ctx, table.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to get unique constraints for %s: %w", table.Name, err)
		}

		for _, fk := range table.ForeignKeys {
			relType := "||--o{"
			if slices.Contains(unique, fk.FromColumn) {
				relType = "||--||"
			}
			relationships = append(relationships, models.Relationship{
				FromTable: fk.ToTable,
				ToTable:   table.Name,
				Type:      relType,
			})
		}
	}

	return relationships, nil
}

// detectJunctionTables flags tables whose primary key is made of at least two
// foreign keys and that carry few other columns.
func detectJunctionTables(tables []models.Table) map[string]bool {
	junctions := make(map[string]bool)
	for _, table := range tables {
		if len(table.ForeignKeys) < minJunctionTableFKs ||
			len(table.PrimaryKeys) < minJunctionTableFKs ||
			len(table.Columns) > maxJunctionTableColumns {
			continue
		}

		allFKsInPK := true
		for _, fk := range table.ForeignKeys {
			if !slices.Contains(table.PrimaryKeys, fk.FromColumn) {
				allFKsInPK = false
				break
			}
		}
		fkCountInPK := 0
		for _, pk := range table.PrimaryKeys {
			if isForeignKey(table.ForeignKeys, pk) {
				fkCountInPK++
			}
		}
		if allFKsInPK && fkCountInPK >= minJunctionTableFKs {
			junctions[table.Name] = true
		}
	}
	return junctions
}

func generateMermaid(tables []models.Table, relationships []models.Relationship) string {
	var sb strings.Builder

	sb.WriteString("erDiagram\n")

	if len(relationships) > 0 {
		seen := make(map[string]bool)
		for _, rel := range relationships {
			key := fmt.Sprintf("%s:%s:%s", rel.FromTable, rel.Type, rel.ToTable)
			if seen[key] {
				continue
			}
			seen[key] = true

			// Mermaid requires a label, an empty one hides it.
			fmt.Fprintf(&sb, "    %s %s %s : \"\"\n",
				mermaidName(rel.FromTable), rel.Type, mermaidName(rel.ToTable))
		}
		sb.WriteString("\n")
	}

	for _, table := range tables {
		fmt.Fprintf(&sb, "    %s {\n", mermaidName(table.Name))

		for _, col := range table.Columns {
			annotations := ""
			if slices.Contains(table.PrimaryKeys, col.Name) {
				annotations = " PK"
			}
			if isForeignKey(table.ForeignKeys, col.Name) {
				annotations += " FK"
			}
			fmt.Fprintf(&sb, "        %s %s%s\n", simplifyDataType(col.DataType), mermaidAttribute(col.Name), annotations)
		}

		sb.WriteString("    }\n\n")
	}

	return sb.String()
}

func mermaidName(table string) string {
	return strings.ToUpper(table)
}

// Mermaid attribute names cannot contain spaces.
func mermaidAttribute(column string) string {
	return strings.ReplaceAll(column, " ", "_")
}

func simplifyDataType(dataType string) string {
	dt := strings.ToLower(dataType)

	switch {
	case dt == "integer":
		return "int"
	case dt == "bigint", dt == "smallint", dt == "text", dt == "date", dt == "boolean":
		return dt
	case strings.HasPrefix(dt, "character varying"):
		return "varchar"
	case strings.HasPrefix(dt, "character"):
		return "char"
	case strings.HasPrefix(dt, "timestamp without time zone"):
		return "timestamp"
	case strings.HasPrefix(dt, "timestamp with time zone"):
		return "timestamptz"
	case strings.HasPrefix(dt, "numeric"):
		return "numeric"
	case dt == "double precision":
		return "double"
	default:
		return strings.ReplaceAll(dt, " ", "_")
	}
}

func isForeignKey(fks []models.ForeignKey, colName string) bool {
	for _, fk := range fks {
		if fk.FromColumn == colName {
			return true
		}
	}
	return false
}
