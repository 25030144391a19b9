package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordtable/wordtable/internal/app"
	"github.com/wordtable/wordtable/internal/config"
	"github.com/wordtable/wordtable/internal/loader"
	"github.com/wordtable/wordtable/internal/query"
	btstore "github.com/wordtable/wordtable/internal/store/bigtable"
)

func main() {
	application, err := initialize(os.Args[1:])
	if err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}

	if err = application.Run(context.Background()); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func initialize(args []string) (*app.App, error) {
	cfg, err := config.New(args)
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	// tag every log line of this run so interleaved runs can be told apart
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	// the store talks to Bigtable; its Run step provisions the table
	wordStore, err := btstore.New(&btstore.Config{
		Project:  cfg.ProjectID,
		Instance: cfg.InstanceID,
		Table:    cfg.Table,
		Family:   cfg.Family,
	})
	if err != nil {
		return nil, err
	}

	wordLoader, err := loader.New(&loader.Config{
		Path:      cfg.WordsFile,
		BatchSize: cfg.BatchSize,
		Store:     wordStore,
	})
	if err != nil {
		return nil, err
	}

	pointQuery, err := query.NewPoint(&query.PointConfig{
		Key:   cfg.PointKey,
		Store: wordStore,
		Out:   os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	rangeQuery, err := query.NewScan(&query.ScanConfig{
		Start: cfg.ScanStart,
		End:   cfg.ScanEnd,
		Store: wordStore,
		Out:   os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	application, err := app.CreateApp(&app.Config{
		ServiceName: "wordtable",
		Steps:       []app.Step{wordStore, wordLoader, pointQuery, rangeQuery},
		Closers:     []app.Closer{wordStore},
	})
	if err != nil {
		return nil, err
	}

	return application, nil
}
