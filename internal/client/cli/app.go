package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/mhpportal/internal/client/api"
	"github.com/dmitrijs2005/mhpportal/internal/client/config"
	"github.com/dmitrijs2005/mhpportal/internal/client/export"
	"github.com/dmitrijs2005/mhpportal/internal/client/guard"
	"github.com/dmitrijs2005/mhpportal/internal/client/models"
	"github.com/dmitrijs2005/mhpportal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mhpportal/internal/client/services"
	"github.com/dmitrijs2005/mhpportal/internal/client/session"
	"github.com/dmitrijs2005/mhpportal/internal/client/storage"
	"github.com/dmitrijs2005/mhpportal/internal/logging"
)

// View is the screen the App currently shows.
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
	ViewAdmin     View = "admin"
)

// Options tweak how NewApp wires its dependencies.
type Options struct {
	// Ephemeral keeps the credential in memory instead of the session file.
	Ephemeral bool
	In        io.Reader
	Out       io.Writer
}

// App hosts one view at a time. It is driven from a single goroutine.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	out    io.Writer
	reader *bufio.Reader

	store session.Store
	api   api.Client
	guard *guard.Guard
	auth  *services.AuthService
	sink  export.Sink

	view     View
	identity *models.Identity
	reports  *services.ReportWorkflow
	admin    *services.AdminWorkflow

	closers []func() error
}

// NewApp opens the session store and builds the API client and sinks from cfg.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, opts Options) (*App, error) {
	var (
		store   session.Store
		closers []func() error
	)

	if opts.Ephemeral {
		store = session.NewMemoryStore("")
	} else {
		db, err := storage.InitDatabase(ctx, cfg.SessionDBPath)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", cfg.SessionDBPath, "err", err)
			return nil, err
		}
		closers = append(closers, db.Close)
		store = session.NewSQLStore(metadata.NewSQLiteRepository(db))
	}

	client := api.NewHTTPClient(cfg.ServerBaseURL, store,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log.With("component", "api")),
	)

	a := newApp(cfg, log, store, client, newSink(ctx, cfg, log), opts)
	a.closers = closers
	return a, nil
}

func newSink(ctx context.Context, cfg *config.Config, log logging.Logger) export.Sink {
	local := export.NewFileSink(cfg.DownloadDir)
	if !cfg.Export.Enabled() {
		return local
	}

	e := cfg.Export
	archive, err := export.NewS3Sink(ctx, export.S3Options{
		Bucket:       e.S3Bucket,
		Region:       e.S3Region,
		BaseEndpoint: e.S3BaseEndpoint,
		AccessKey:    e.S3AccessKey,
		SecretKey:    e.S3SecretKey,
		Prefix:       e.S3Prefix,
	})
	if err != nil {
		log.Error(ctx, "s3 archive disabled", "bucket", e.S3Bucket, "err", err)
		return local
	}
	return &export.ArchivingSink{Primary: local, Archive: archive, Log: log}
}

func newApp(cfg *config.Config, log logging.Logger, store session.Store, client api.Client, sink export.Sink, opts Options) *App {
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		cfg:    cfg,
		log:    log,
		out:    out,
		reader: bufio.NewReader(in),
		store:  store,
		api:    client,
		guard:  guard.New(store, client, log.With("component", "guard")),
		auth:   services.NewAuthService(client, store, log.With("component", "auth")),
		sink:   sink,
		view:   ViewLogin,
	}
}

// Close releases the session database.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

func (a *App) currentView() View {
	return a.view
}

func (a *App) getStatus() string {
	if a.identity == nil {
		return string(a.view)
	}
	return a.identity.Email + " " + string(a.view)
}
