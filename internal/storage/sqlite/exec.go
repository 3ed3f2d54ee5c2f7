package sqlite

import (
	"fmt"
	"strings"
)

// colVal pairs a column name with its bound value. Column names come from the
// per-entity builders in this package, never from caller input; values are
// always passed as bound parameters.
type colVal struct {
	col string
	val any
}

// insertRow inserts one row built from an ordered column/value list.
func (s *Store) insertRow(table string, cols []colVal) error {
	if len(cols) == 0 {
		return fmt.Errorf("insert into %s: no columns", table)
	}

	names := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, cv := range cols {
		names[i] = cv.col
		placeholders[i] = "?"
		args[i] = cv.val
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(names, ", "), strings.Join(placeholders, ", "))
	_, err := s.db.Exec(query, args...)
	return err
}

// updateByID applies an ordered column/value list to the row with the given
// id and returns the number of rows affected. Zero rows means the id does
// not exist; callers decide whether that is an error.
func (s *Store) updateByID(table, id string, cols []colVal) (int64, error) {
	if len(cols) == 0 {
		return 0, fmt.Errorf("update %s: no columns", table)
	}

	set := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, cv := range cols {
		set[i] = cv.col + " = ?"
		args = append(args, cv.val)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(set, ", "))
	result, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// deleteByID removes the row with the given id and returns the number of
// rows affected.
func (s *Store) deleteByID(table, id string) (int64, error) {
	result, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// nullable maps the empty string to NULL so optional text columns round-trip
// the way the schema expects.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt stores booleans as 0/1 integers per the schema.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
