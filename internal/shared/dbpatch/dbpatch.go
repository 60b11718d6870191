// Package dbpatch collects the (column, value) pairs of a single UPDATE.
// Values are always bound as parameters; only column names chosen by the
// caller end up in SQL text. Insertion order is kept for logging only: gorm
// renders the map from Assignments with its columns sorted by name.
package dbpatch

import "time"

type Set struct {
	columns []string
	values  map[string]any
}

func New() *Set {
	return &Set{values: map[string]any{}}
}

// Add assigns value to column. Adding the same column twice keeps the first
// position and the last value.
func (s *Set) Add(column string, value any) *Set {
	if _, ok := s.values[column]; !ok {
		s.columns = append(s.columns, column)
	}
	s.values[column] = value
	return s
}

// AddIfPresent adds the column only when the caller supplied it. A non-nil
// pointer to "" is a supplied value and is written as such.
func (s *Set) AddIfPresent(column string, value *string) *Set {
	if value == nil {
		return s
	}
	return s.Add(column, *value)
}

// Touch stamps column with now in UTC.
func (s *Set) Touch(column string, now time.Time) *Set {
	return s.Add(column, now.UTC())
}

func (s *Set) Empty() bool {
	return len(s.columns) == 0
}

// Columns returns the columns in insertion order.
func (s *Set) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Assignments returns a copy usable with gorm's Updates(map[string]any).
func (s *Set) Assignments() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
