package bigtable

import (
	"context"
	"errors"
	"fmt"

	bt "cloud.google.com/go/bigtable"

	"github.com/wordtable/wordtable/internal/store"
)

// WriteRows applies one batch of row mutations in a single bulk call. All
// cells in the batch share one timestamp. Bigtable keeps per-cell versions,
// so rewriting an existing key is last-write-wins; older versions age out
// under the family's MaxVersions policy.
func (s *Store) WriteRows(ctx context.Context, rows []store.RowMutation) error {
	if len(rows) == 0 {
		return nil
	}

	ts := bt.Now()
	keys := make([]string, 0, len(rows))
	muts := make([]*bt.Mutation, 0, len(rows))
	for _, row := range rows {
		mut := bt.NewMutation()
		for qualifier, value := range row.Qualifiers {
			mut.Set(s.family, qualifier, ts, value)
		}
		keys = append(keys, row.Key)
		muts = append(muts, mut)
	}

	rowErrs, err := s.tbl.ApplyBulk(ctx, keys, muts)
	if err != nil {
		return fmt.Errorf("bulk apply failed: %w", err)
	}

	// rowErrs carries per-entry failures when the bulk call itself succeeded
	var errGrp []error
	for i, rowErr := range rowErrs {
		if rowErr != nil {
			errGrp = append(errGrp, fmt.Errorf("failed to write row %s: %w", keys[i], rowErr))
		}
	}
	return errors.Join(errGrp...)
}
