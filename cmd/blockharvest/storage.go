package main

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goodnatureofminers/blockharvest/internal/metrics"
	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockharvest/internal/repository/postgres"
	"github.com/goodnatureofminers/blockharvest/internal/retriever"
)

const (
	backendClickhouse = "clickhouse"
	backendPostgres   = "postgres"
)

type storage interface {
	retriever.Repository
	BlockFeeRates(ctx context.Context) ([]model.BlockFeeRates, error)
	Ping(ctx context.Context) error
	Close() error
}

// storageBackend picks the backend from the DSN scheme.
func storageBackend(dsn string) (string, error) {
	if dsn == "" {
		return "", configErrorf("--storage-dsn is required")
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", configErrorf("parse storage dsn: %w", err)
	}
	switch u.Scheme {
	case "clickhouse":
		return backendClickhouse, nil
	case "postgres", "postgresql":
		return backendPostgres, nil
	default:
		return "", configErrorf("unsupported storage scheme %q", u.Scheme)
	}
}

func openStorage(ctx context.Context, dsn string) (storage, error) {
	backend, err := storageBackend(dsn)
	if err != nil {
		return nil, err
	}

	var store storage
	switch backend {
	case backendClickhouse:
		store, err = clickhouse.NewRepository(dsn, metrics.NewRepository(backend))
	default:
		store, err = postgres.NewRepository(ctx, dsn, metrics.NewRepository(backend))
	}
	if err != nil {
		return nil, fmt.Errorf("init %s repository: %w", backend, err)
	}

	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
