package datarecording

import (
	"context"
	"database/sql"
	"fmt"
)

// DataReader reads back the tables written by a DataRecorder.
type DataReader interface {
	// ListTables returns the names of all tables in the database.
	ListTables(ctx context.Context) ([]string, error)

	// Count returns the number of rows in a table.
	Count(ctx context.Context, tableName string) (int, error)

	// Close closes the reader
	Close() error
}

type sqliteReader struct {
	*sql.DB
}

// NewReader opens a database file for reading.
func NewReader(dbFilename string) (DataReader, error) {
	db, err := sql.Open("sqlite3", dbFilename)
	if err != nil {
		return nil, err
	}

	return &sqliteReader{DB: db}, nil
}

// NewReaderWithDB creates a new DataReader with a given database
func NewReaderWithDB(db *sql.DB) DataReader {
	return &sqliteReader{DB: db}
}

func (r *sqliteReader) ListTables(ctx context.Context) ([]string, error) {
	rows, err := r.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

func (r *sqliteReader) Count(ctx context.Context, tableName string) (int, error) {
	var count int

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", tableName)
	if err := r.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", tableName, err)
	}

	return count, nil
}
