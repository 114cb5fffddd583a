package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/nhath/registros/internal/config"
	"github.com/nhath/registros/internal/export"
	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/journal"
	"github.com/nhath/registros/internal/logging"
)

// options holds global flag values
type options struct {
	configPath string
	apiURL     string
	token      string
	limit      int64
	debug      bool
	logLevel   string
	journal    string
}

// globalFlags returns the flags shared by every command with destination opts
func globalFlags(opts *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to config.toml",
			Sources:     cli.EnvVars("REGISTROS_CONFIG"),
			Destination: &opts.configPath,
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Base URL of the registros API",
			Sources:     cli.EnvVars("REGISTROS_API_URL"),
			Destination: &opts.apiURL,
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "Bearer token, overrides the keyring",
			Sources:     cli.EnvVars("REGISTROS_TOKEN"),
			Destination: &opts.token,
		},
		&cli.IntFlag{
			Name:        "limit",
			Aliases:     []string{"l"},
			Usage:       "Number of records requested per fetch",
			Destination: &opts.limit,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "Enable debug logging (to the state dir for the interactive view)",
			Destination: &opts.debug,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Sources:     cli.EnvVars("REGISTROS_LOG_LEVEL"),
			Destination: &opts.logLevel,
		},
		&cli.StringFlag{
			Name:        "journal",
			Usage:       "Path to the export journal database",
			Sources:     cli.EnvVars("REGISTROS_JOURNAL"),
			Destination: &opts.journal,
		},
	}
}

// loadConfig reads the config file and applies flag overrides
func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config")
	}

	if o.apiURL != "" {
		cfg.APIURL = o.apiURL
	}
	if o.limit > 0 {
		cfg.Limit = int(o.limit)
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// setupLogger attaches the logger to ctx. The interactive view owns the
// terminal, so it only logs to the debug file and only with --debug.
func (o *options) setupLogger(ctx context.Context, c *cli.Command, cfg *config.Config, interactive bool) (context.Context, func(), error) {
	closer := func() {}
	var w io.Writer = io.Discard

	switch {
	case interactive && o.debug:
		f, err := logging.OpenDebugFile()
		if err != nil {
			return ctx, closer, err
		}
		w = f
		closer = func() { _ = f.Close() }
	case !interactive:
		w = c.Root().ErrWriter
		if w == nil {
			w = os.Stderr
		}
	}

	logger := logging.New(cfg.LogLevel, w)
	logging.SetDefault(logger)
	return logging.With(ctx, logger), closer, nil
}

// tokenStore is the keyring surface used by the token commands
type tokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	DeleteToken() error
}

// openTokenStore is replaced in tests
var openTokenStore = func(key string) (tokenStore, error) {
	return config.NewTokenStore(key)
}

// tokenSource prefers --token, then the keyring. An unavailable keyring
// degrades to an empty token so the request still goes out.
func (o *options) tokenSource(ctx context.Context, cfg *config.Config) history.TokenSource {
	if o.token != "" {
		return config.StaticToken(o.token)
	}
	store, err := openTokenStore(cfg.TokenKey)
	if err != nil {
		logging.From(ctx).Warn("keyring unavailable, sending requests without token", "error", err)
		return config.StaticToken("")
	}
	return store
}

func (o *options) newClient(ctx context.Context, cfg *config.Config) *history.Client {
	return history.NewClient(cfg.APIURL, o.tokenSource(ctx, cfg),
		history.WithLimit(cfg.Limit),
		history.WithTimeout(cfg.RequestTimeout()),
	)
}

// openJournal opens the export journal, nil when it cannot be opened
func (o *options) openJournal(ctx context.Context) *journal.Store {
	var (
		store *journal.Store
		err   error
	)
	if o.journal != "" {
		store, err = journal.Open(o.journal)
	} else {
		store, err = journal.NewStore()
	}
	if err != nil {
		logging.From(ctx).Warn("export journal disabled", "error", err)
		return nil
	}
	return store
}

// newExporter builds the export service for cfg writing into dir
func newExporter(cfg *config.Config, store *journal.Store, format export.Format, dir string) (*export.Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	opts := []export.Option{
		export.WithLocation(loc),
		export.WithWriters(export.XLSXWriter{Disabled: !cfg.Export.XLSX}, export.CSVWriter{}),
		export.WithFormat(format),
	}
	if store != nil {
		opts = append(opts, export.WithRecorder(store))
	}
	return export.NewService(dir, opts...), nil
}
