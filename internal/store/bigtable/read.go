package bigtable

import (
	"context"
	"fmt"

	bt "cloud.google.com/go/bigtable"

	"github.com/wordtable/wordtable/internal/store"
)

// ReadRow reads a single row by exact key, keeping only the latest cell per
// column. Returns store.ErrNotFound when no row exists for the key.
func (s *Store) ReadRow(ctx context.Context, key string) (*store.Row, error) {
	row, err := s.tbl.ReadRow(ctx, key, bt.RowFilter(bt.LatestNFilter(1)))
	if err != nil {
		return nil, fmt.Errorf("failed to read row %s: %w", key, err)
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("%s: %w", key, store.ErrNotFound)
	}
	return convertRow(key, row), nil
}

// ReadRange streams all rows with start <= key < end in ascending key order,
// latest cell per column. fn returning false stops the scan early. An empty
// or inverted range streams nothing and returns nil.
func (s *Store) ReadRange(ctx context.Context, start, end string, fn func(*store.Row) bool) error {
	err := s.tbl.ReadRows(ctx, bt.NewRange(start, end), func(r bt.Row) bool {
		return fn(convertRow(r.Key(), r))
	}, bt.RowFilter(bt.LatestNFilter(1)))
	if err != nil {
		return fmt.Errorf("failed to scan range [%s, %s): %w", start, end, err)
	}
	return nil
}

func convertRow(key string, row bt.Row) *store.Row {
	result := &store.Row{
		Key:     key,
		Columns: make(map[string][]byte),
	}
	for _, items := range row {
		for _, item := range items {
			// item.Column is already "family:qualifier"
			result.Columns[item.Column] = item.Value
		}
	}
	return result
}
