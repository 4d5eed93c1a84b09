package repositories

import (
	"context"

	"wardbook/internal/database"
	"wardbook/internal/models"
)

const publicSchema = "public"

type SchemaRepository struct {
	store *database.Store
}

func NewSchemaRepository(store *database.Store) *SchemaRepository {
	return &SchemaRepository{store: store}
}

// GetColumns returns the columns of table in ordinal order.
func (r *SchemaRepository) GetColumns(ctx context.Context, table string) ([]models.Column, error) {
	rows, err := r.store.Read(ctx, `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`, publicSchema, table)
	if err != nil {
		return nil, err
	}

	columns := make([]models.Column, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, models.Column{
			Name:     text(row, "column_name"),
			DataType: text(row, "data_type"),
			Nullable: text(row, "is_nullable") == "YES",
		})
	}
	return columns, nil
}

// GetPrimaryKeys returns all primary key column names for a specific table
func (r *SchemaRepository) GetPrimaryKeys(ctx context.Context, table string) ([]string, error) {
	rows, err := r.store.Read(ctx, `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY kcu.ordinal_position
	`, publicSchema, table)
	if err != nil {
		return nil, err
	}

	pks := make([]string, 0, len(rows))
	for _, row := range rows {
		pks = append(pks, text(row, "column_name"))
	}
	return pks, nil
}

// GetForeignKeys returns all foreign keys for a specific table
func (r *SchemaRepository) GetForeignKeys(ctx context.Context, table string) ([]models.ForeignKey, error) {
	rows, err := r.store.Read(ctx, `
		SELECT
			tc.constraint_name,
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY tc.constraint_name
	`, publicSchema, table)
	if err != nil {
		return nil, err
	}

	fks := make([]models.ForeignKey, 0, len(rows))
	for _, row := range rows {
		fks = append(fks, models.ForeignKey{
			ConstraintName: text(row, "constraint_name"),
			FromColumn:     text(row, "column_name"),
			ToTable:        text(row, "foreign_table_name"),
			ToColumn:       text(row, "foreign_column_name"),
		})
	}
	return fks, nil
}

// GetUniqueColumns returns the single-column UNIQUE constraints of table.
func (r *SchemaRepository) GetUniqueColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := r.store.Read(ctx, `
		SELECT DISTINCT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'UNIQUE'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY kcu.column_name
	`, publicSchema, table)
	if err != nil {
		return nil, err
	}

	cols := make([]string, 0, len(rows))
	for _, row := range rows {
		cols = append(cols, text(row, "column_name"))
	}
	return cols, nil
}
