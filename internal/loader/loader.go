package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordtable/wordtable/internal/store"
)

//go:generate mockgen -destination=loader_mock.go -package=loader -source=loader.go

const defaultBatchSize = 500

type writer interface {
	WriteRows(ctx context.Context, rows []store.RowMutation) error
}

// Loader reads a word list and bulk-writes one row per word. The row key is
// the word itself; the columns are attributes derived from the word.
type Loader struct {
	path      string
	batchSize int
	store     writer
}

type Config struct {
	// Path is the word list: plain UTF-8 text, one word per line.
	Path string
	// BatchSize is the number of rows accumulated before a bulk write.
	BatchSize int
	Store     writer
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Path == "" {
		errGrp = append(errGrp, errors.New("words file path is required"))
	}
	if c.Store == nil {
		errGrp = append(errGrp, errors.New("store is required"))
	}
	if c.BatchSize < 0 {
		errGrp = append(errGrp, errors.New("batch size cannot be negative"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Loader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = defaultBatchSize
	}

	return &Loader{
		path:      cfg.Path,
		batchSize: batchSize,
		store:     cfg.Store,
	}, nil
}

// Run streams the words file and writes rows in batches. A partial batch is
// flushed at EOF. The first write error aborts the load; rows already
// flushed stay in the table.
func (l *Loader) Run(ctx context.Context) error {
	file, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("failed to open words file: %w", err)
	}
	defer file.Close()

	log.Info().Str("path", l.path).Msg("Writing words")

	var (
		batch   []store.RowMutation
		prev    string
		index   int
		written int
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), " \t\r")
		if word == "" {
			continue
		}

		batch = append(batch, store.RowMutation{
			Key:        word,
			Qualifiers: wordAttributes(word, prev, index),
		})
		prev = word
		index++

		if len(batch) >= l.batchSize {
			if err := l.flush(ctx, batch); err != nil {
				return err
			}
			written += len(batch)
			batch = batch[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read words file: %w", err)
	}

	if len(batch) > 0 {
		if err := l.flush(ctx, batch); err != nil {
			return err
		}
		written += len(batch)
	}

	log.Info().Int("rows", written).Msg("Word load complete")
	return nil
}

func (l *Loader) flush(ctx context.Context, batch []store.RowMutation) error {
	log.Debug().Int("rows", len(batch)).Msg("Writing mutation batch")
	if err := l.store.WriteRows(ctx, batch); err != nil {
		return fmt.Errorf("failed to write batch: %w", err)
	}
	return nil
}

func (l *Loader) Name() string {
	return "Word Loader"
}

// wordAttributes builds the column values stored for one word:
//
//	att_index   - ordinal position of the word in the file
//	att_letters - number of letters in the word
//	att_shared_root_with_prev - characters shared with the previous word
func wordAttributes(word, prev string, index int) map[string][]byte {
	return map[string][]byte{
		"att_index":                 []byte(strconv.Itoa(index)),
		"att_letters":               []byte(strconv.Itoa(len([]rune(word)))),
		"att_shared_root_with_prev": []byte(sharedRoot(word, prev)),
	}
}

// sharedRoot collects the characters of word that match prev at the same
// position. Comparison stops at the shorter of the two.
func sharedRoot(word, prev string) string {
	w := []rune(word)
	p := []rune(prev)

	n := len(w)
	if len(p) < n {
		n = len(p)
	}

	shared := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		if w[i] == p[i] {
			shared = append(shared, w[i])
		}
	}
	return string(shared)
}
