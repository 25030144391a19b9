package query

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/wordtable/wordtable/internal/store"
)

// Scan prints every row whose key falls in [start, end), in key order.
type Scan struct {
	start string
	end   string
	store reader
	out   io.Writer
}

type ScanConfig struct {
	// Start is the inclusive lower bound, End the exclusive upper bound.
	// An empty range is valid and prints nothing.
	Start string
	End   string
	Store reader
	// Out receives the printed rows.
	Out io.Writer
}

func (c *ScanConfig) validate() error {
	var errGrp []error
	if c.Store == nil {
		errGrp = append(errGrp, errors.New("store is required"))
	}
	if c.Out == nil {
		errGrp = append(errGrp, errors.New("output writer is required"))
	}
	return errors.Join(errGrp...)
}

func NewScan(cfg *ScanConfig) (*Scan, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Scan{
		start: cfg.Start,
		end:   cfg.End,
		store: cfg.Store,
		out:   cfg.Out,
	}, nil
}

func (s *Scan) Run(ctx context.Context) error {
	log.Info().Str("start", s.start).Str("end", s.end).Msg("Scanning row range")

	var printErr error
	err := s.store.ReadRange(ctx, s.start, s.end, func(row *store.Row) bool {
		if printErr = printRow(s.out, row); printErr != nil {
			return false
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("range query failed: %w", err)
	}
	return printErr
}

func (s *Scan) Name() string {
	return "Range Query"
}
