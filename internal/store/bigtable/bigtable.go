package bigtable

import (
	"context"
	"errors"
	"fmt"
	"slices"

	bt "cloud.google.com/go/bigtable"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const defaultMaxVersions = 2

// Store wraps the Cloud Bigtable admin and data clients behind the small
// surface the rest of the application needs: ensure the table exists, write
// rows, read a row, scan a range.
type Store struct {
	project     string
	instance    string
	table       string
	family      string
	maxVersions int
	opts        []option.ClientOption

	admin  *bt.AdminClient
	client *bt.Client
	tbl    *bt.Table
}

type Config struct {
	// Project and Instance identify the Bigtable instance to connect to.
	Project  string
	Instance string
	// Table and Family name the table and column family provisioned on Run.
	Table  string
	Family string
	// MaxVersions is the GC policy applied to the column family on creation.
	MaxVersions int
	// ClientOptions are passed through to both clients. Used by tests to
	// point the store at an emulator.
	ClientOptions []option.ClientOption
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Project == "" {
		errGrp = append(errGrp, errors.New("project is required"))
	}
	if c.Instance == "" {
		errGrp = append(errGrp, errors.New("instance is required"))
	}
	if c.Table == "" {
		errGrp = append(errGrp, errors.New("table is required"))
	}
	if c.Family == "" {
		errGrp = append(errGrp, errors.New("family is required"))
	}
	if c.MaxVersions < 0 {
		errGrp = append(errGrp, errors.New("max versions cannot be negative"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	maxVersions := cfg.MaxVersions
	if maxVersions == 0 {
		maxVersions = defaultMaxVersions
	}

	return &Store{
		project:     cfg.Project,
		instance:    cfg.Instance,
		table:       cfg.Table,
		family:      cfg.Family,
		maxVersions: maxVersions,
		opts:        cfg.ClientOptions,
	}, nil
}

// Run connects both clients and provisions the table. Credentials come from
// the ambient environment (Application Default Credentials, or
// BIGTABLE_EMULATOR_HOST when set).
func (s *Store) Run(ctx context.Context) error {
	if err := s.connect(ctx); err != nil {
		return err
	}
	return s.ensureTable(ctx)
}

func (s *Store) connect(ctx context.Context) error {
	admin, err := bt.NewAdminClient(ctx, s.project, s.instance, s.opts...)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}

	client, err := bt.NewClient(ctx, s.project, s.instance, s.opts...)
	if err != nil {
		// don't leak the admin connection on a half-open store
		_ = admin.Close()
		return fmt.Errorf("failed to create data client: %w", err)
	}

	s.admin = admin
	s.client = client
	s.tbl = client.Open(s.table)
	return nil
}

// ensureTable creates the table with its column family if it does not exist
// yet. Creating a table that already exists is a no-op, so repeated runs
// against the same instance are safe.
func (s *Store) ensureTable(ctx context.Context) error {
	tables, err := s.admin.Tables(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	if slices.Contains(tables, s.table) {
		log.Info().Str("table", s.table).Msg("Table already exists")
		return nil
	}

	log.Info().Str("table", s.table).Str("family", s.family).
		Msg("Creating table")
	conf := &bt.TableConf{
		TableID: s.table,
		Families: map[string]bt.GCPolicy{
			s.family: bt.MaxVersionsPolicy(s.maxVersions),
		},
	}
	if err := s.admin.CreateTableFromConf(ctx, conf); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}

	return nil
}

func (s *Store) Name() string {
	return "Bigtable Store"
}

// Close releases both client connections. Safe to call on a store that
// never connected.
func (s *Store) Close() error {
	var errGrp []error
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			errGrp = append(errGrp, fmt.Errorf("failed to close data client: %w", err))
		}
	}
	if s.admin != nil {
		if err := s.admin.Close(); err != nil {
			errGrp = append(errGrp, fmt.Errorf("failed to close admin client: %w", err))
		}
	}
	return errors.Join(errGrp...)
}
