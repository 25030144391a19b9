package query

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wordtable/wordtable/internal/store"
)

//go:generate mockgen -destination=query_mock.go -package=query -source=query.go

type reader interface {
	ReadRow(ctx context.Context, key string) (*store.Row, error)
	ReadRange(ctx context.Context, start, end string, fn func(*store.Row) bool) error
}

// formatRow renders a row as a single line:
//
//	Row: banana - word_attributes:att_index=1 - word_attributes:att_letters=6
//
// Columns are sorted so the output is stable.
func formatRow(row *store.Row) string {
	columns := make([]string, 0, len(row.Columns))
	for column := range row.Columns {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("%s=%s", column, row.Columns[column]))
	}
	return fmt.Sprintf("Row: %s - %s", row.Key, strings.Join(parts, " - "))
}

func printRow(out io.Writer, row *store.Row) error {
	if _, err := fmt.Fprintln(out, formatRow(row)); err != nil {
		return fmt.Errorf("failed to print row: %w", err)
	}
	return nil
}
