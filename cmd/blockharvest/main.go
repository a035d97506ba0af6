// Command blockharvest retrieves historical blocks from a blockchain explorer and reports fee rate statistics.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	exitOK          = 0
	exitFatal       = 1
	exitConfig      = 2
	exitFailures    = 3
	exitInterrupted = 4
)

type options struct {
	StorageDSN string `long:"storage-dsn" env:"BLOCKHARVEST_STORAGE_DSN" description:"storage DSN, clickhouse:// or postgres://"`
	TimeZone   string `long:"time-zone" env:"BLOCKHARVEST_TIME_ZONE" default:"Local" description:"time zone the day boundaries are aligned to"`

	ExplorerURL           string        `long:"explorer-url" env:"BLOCKHARVEST_EXPLORER_URL" default:"https://blockchain.info" description:"explorer API base URL"`
	ExplorerTimeout       time.Duration `long:"explorer-timeout" env:"BLOCKHARVEST_EXPLORER_TIMEOUT" default:"30s" description:"explorer HTTP timeout"`
	ExplorerRPS           int           `long:"explorer-rps" env:"BLOCKHARVEST_EXPLORER_RPS" default:"5" description:"explorer requests per second, 0 disables the limit"`
	ExplorerRetries       uint64        `long:"explorer-retries" env:"BLOCKHARVEST_EXPLORER_RETRIES" default:"2" description:"retries of failed explorer requests"`
	ExplorerRetryInterval time.Duration `long:"explorer-retry-interval" env:"BLOCKHARVEST_EXPLORER_RETRY_INTERVAL" default:"1s" description:"initial explorer retry interval"`

	ListWorkers   int `long:"list-workers" env:"BLOCKHARVEST_LIST_WORKERS" default:"2" description:"concurrent day listings"`
	ListQueue     int `long:"list-queue" env:"BLOCKHARVEST_LIST_QUEUE" default:"2" description:"days waiting for a listing worker"`
	DetailWorkers int `long:"detail-workers" env:"BLOCKHARVEST_DETAIL_WORKERS" default:"16" description:"concurrent block detail fetches"`
	DetailQueue   int `long:"detail-queue" env:"BLOCKHARVEST_DETAIL_QUEUE" default:"64" description:"blocks waiting for a detail worker"`

	MetricsAddr string        `long:"metrics-addr" env:"BLOCKHARVEST_METRICS_ADDR" description:"address for the metrics server, empty disables it"`
	RedisURL    string        `long:"redis-url" env:"BLOCKHARVEST_REDIS_URL" description:"redis URL of the failure journal, empty disables it"`
	RedisTTL    time.Duration `long:"redis-ttl" env:"BLOCKHARVEST_REDIS_TTL" default:"720h" description:"retention of failure journal entries"`

	Retrieve retrieveCommand `command:"retrieve" description:"retrieve and store the blocks of a date range"`
	Draw     drawCommand     `command:"draw" description:"render the fee rate report of stored blocks"`
	Failures failuresCommand `command:"failures" description:"list the failures journaled by a run"`
}

type configError struct {
	err error
}

func (e *configError) Error() string {
	return "invalid configuration: " + e.err.Error()
}

func (e *configError) Unwrap() error {
	return e.err
}

func configErrorf(format string, args ...any) error {
	return &configError{err: fmt.Errorf(format, args...)}
}

var errInterrupted = errors.New("run interrupted")

type failuresError struct {
	count int
}

func (e *failuresError) Error() string {
	return fmt.Sprintf("run completed with %d failures", e.count)
}

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts, command, err := parseOptions(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return exitOK
		}
		logger.Error("failed to parse options", zap.Error(err))
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// After the first signal the default handler is restored, so a second one terminates the process.
	context.AfterFunc(ctx, stop)

	err = execute(ctx, opts, command, logger)
	code := exitCode(err)
	switch code {
	case exitOK:
	case exitFailures, exitInterrupted:
		logger.Warn("blockharvest finished", zap.String("command", command), zap.Error(err))
	default:
		logger.Error("blockharvest failed", zap.String("command", command), zap.Error(err))
	}
	return code
}

func parseOptions(args []string) (*options, string, error) {
	opts := &options{}
	parser := flags.NewParser(opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) {
			return nil, "", err
		}
		// Positional argument conversion errors are returned unwrapped.
		return nil, "", &configError{err: err}
	}
	if parser.Active == nil {
		return nil, "", configErrorf("no command given")
	}

	command := parser.Active.Name
	if err := opts.validate(command); err != nil {
		return nil, "", err
	}
	return opts, command, nil
}

func (o *options) validate(command string) error {
	if _, err := o.location(); err != nil {
		return err
	}

	switch command {
	case commandRetrieve, commandDraw:
		if _, err := storageBackend(o.StorageDSN); err != nil {
			return err
		}
	case commandFailures:
		if o.RedisURL == "" {
			return configErrorf("--redis-url is required")
		}
	}

	if command != commandRetrieve {
		return nil
	}
	if o.ListWorkers < 1 || o.DetailWorkers < 1 {
		return configErrorf("worker counts must be positive")
	}
	if o.ListQueue < 0 || o.DetailQueue < 0 {
		return configErrorf("queue sizes must not be negative")
	}
	return o.Retrieve.validate(o)
}

func (o *options) location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.TimeZone)
	if err != nil {
		return nil, configErrorf("time zone %q: %w", o.TimeZone, err)
	}
	return loc, nil
}

func execute(ctx context.Context, opts *options, command string, logger *zap.Logger) error {
	switch command {
	case commandRetrieve:
		return withMetricsServer(ctx, opts.MetricsAddr, logger, func(ctx context.Context) error {
			return retrieve(ctx, opts, os.Stdout, logger)
		})
	case commandDraw:
		return draw(ctx, opts, os.Stdout)
	case commandFailures:
		return listFailures(ctx, opts, os.Stdout)
	default:
		return configErrorf("unknown command %q", command)
	}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var (
		cerr *configError
		ferr *flags.Error
		rerr *failuresError
	)
	switch {
	case errors.As(err, &cerr), errors.As(err, &ferr):
		return exitConfig
	case errors.Is(err, errInterrupted):
		return exitInterrupted
	case errors.As(err, &rerr):
		return exitFailures
	default:
		return exitFatal
	}
}
