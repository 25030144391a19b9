package store

import (
	"errors"
)

// ErrNotFound is returned by point reads when no row exists for the
// requested key. It lets callers distinguish absence from a failed call.
var ErrNotFound = errors.New("row not found")

// RowMutation is a single row write: every qualifier-value pair is written
// into the store's configured column family under the row key.
//
// Example:
//
//	RowMutation{
//	  Key: "banana",
//	  Qualifiers: map[string][]byte{
//	    "att_index":   []byte("1"),
//	    "att_letters": []byte("6"),
//	  },
//	}
//
// Qualifiers are defined by your codes' logic.
type RowMutation struct {
	Key        string
	Qualifiers map[string][]byte
}

// Row is a read result. Columns maps a fully qualified column name
// ("family:qualifier") to the latest cell value for that column.
type Row struct {
	Key     string
	Columns map[string][]byte
}
