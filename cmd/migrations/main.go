// Command migrations applies the schema migrations of the configured storage backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	StorageDSN    string `long:"storage-dsn" env:"BLOCKHARVEST_STORAGE_DSN" default:"clickhouse://localhost:9000/default" description:"storage DSN, clickhouse:// or postgres://"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" description:"path to migration files, defaults to migrations/<backend>"`
	Down          bool   `long:"down" description:"roll back every migration instead of applying them"`
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg, logger); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}

// target returns the migrations directory and the golang-migrate database URL for dsn.
func target(dsn, dir string) (string, string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", "", fmt.Errorf("parse storage dsn: %w", err)
	}

	var backend, databaseURL string
	switch u.Scheme {
	case "clickhouse":
		// Migration files hold several statements each.
		q := u.Query()
		if q.Get("x-multi-statement") == "" {
			q.Set("x-multi-statement", "true")
			u.RawQuery = q.Encode()
		}
		backend, databaseURL = "clickhouse", u.String()
	case "postgres", "postgresql":
		backend, databaseURL = "postgres", "pgx5://"+strings.TrimPrefix(dsn, u.Scheme+"://")
	default:
		return "", "", fmt.Errorf("unsupported storage scheme %q", u.Scheme)
	}

	if dir == "" {
		dir = filepath.Join("migrations", backend)
	}
	return dir, databaseURL, nil
}

func runMigrations(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir, databaseURL, err := target(cfg.StorageDSN, cfg.MigrationsDir)
	if err != nil {
		return err
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(dir))
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("migration database close error", zap.Error(dbErr))
		}
	}()

	// Stop after the current migration when a signal arrives.
	stopOnSignal := context.AfterFunc(ctx, func() {
		m.GracefulStop <- true
	})
	defer stopOnSignal()

	apply := m.Up
	if cfg.Down {
		apply = m.Down
	}
	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply", zap.String("dir", dir))
			return nil
		}
		return err
	}

	logger.Info("migrations applied successfully", zap.String("dir", dir), zap.Bool("down", cfg.Down))
	return nil
}
