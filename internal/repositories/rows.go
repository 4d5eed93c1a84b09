package repositories

import "wardbook/internal/database"

// text returns the column as a string, empty for NULL.
func text(row database.Row, key string) string {
	s, _ := row.String(key)
	return s
}

func integer(row database.Row, key string) int64 {
	n, _ := row.Int64(key)
	return n
}

// nullableInt returns nil for NULL columns.
func nullableInt(row database.Row, key string) *int64 {
	n, ok := row.Int64(key)
	if !ok {
		return nil
	}
	return &n
}

func nullableArg(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}
