package query

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/wordtable/wordtable/internal/store"
)

// Point reads one row by exact key and prints it.
type Point struct {
	key   string
	store reader
	out   io.Writer
}

type PointConfig struct {
	// Key is the exact row key to read.
	Key   string
	Store reader
	// Out receives the printed row.
	Out io.Writer
}

func (c *PointConfig) validate() error {
	var errGrp []error
	if c.Key == "" {
		errGrp = append(errGrp, errors.New("key is required"))
	}
	if c.Store == nil {
		errGrp = append(errGrp, errors.New("store is required"))
	}
	if c.Out == nil {
		errGrp = append(errGrp, errors.New("output writer is required"))
	}
	return errors.Join(errGrp...)
}

func NewPoint(cfg *PointConfig) (*Point, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Point{
		key:   cfg.Key,
		store: cfg.Store,
		out:   cfg.Out,
	}, nil
}

// Run reads the configured key. An absent row is logged and prints nothing;
// it does not abort the pipeline. Any other read error is fatal.
func (p *Point) Run(ctx context.Context) error {
	log.Info().Str("key", p.key).Msg("Getting a single row by key")

	row, err := p.store.ReadRow(ctx, p.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn().Str("key", p.key).Msg("Row not found")
			return nil
		}
		return fmt.Errorf("point query failed: %w", err)
	}

	return printRow(p.out, row)
}

func (p *Point) Name() string {
	return "Point Query"
}
