// Package sqlite exports record store snapshots into a SQLite database
// for external querying. The text format remains the source of truth;
// exports are one-way and replace the target table.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/satchel/pkg/rec"
)

// ErrInvalidTable is returned for table names that are not simple
// identifiers; names are interpolated into DDL and must stay inert.
var ErrInvalidTable = errors.New("invalid table name")

var identPattern = regexp.MustCompile(`^\w+$`)

// Export mirrors the store into the SQLite database at path: it drops and
// recreates the named table with one column per field, then inserts every
// record in store order. Column types derive from the field kinds.
func Export[R any](path, table string, store *rec.Store[R]) error {
	if !identPattern.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	fields := store.Fields()
	cols := make([]string, len(fields))
	names := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, f := range fields {
		if !identPattern.MatchString(f.Name()) {
			return fmt.Errorf("%w: column %q", ErrInvalidTable, f.Name())
		}
		cols[i] = f.Name() + " " + sqlType(f.Kind())
		names[i] = f.Name()
		marks[i] = "?"
	}

	if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
		return fmt.Errorf("dropping %s: %w", table, err)
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(cols, ", "))
	if _, err := db.Exec(createSQL); err != nil {
		return fmt.Errorf("creating %s: %w", table, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(names, ", "), strings.Join(marks, ", "))
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, r := range store.Records() {
		args := make([]any, len(fields))
		for i, f := range fields {
			args[i] = f.Value(&r)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

// sqlType maps a field kind to its SQLite column type.
func sqlType(k rec.Kind) string {
	switch k.Name() {
	case rec.KindInteger, rec.KindBoolean:
		return "INTEGER"
	case rec.KindFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}
